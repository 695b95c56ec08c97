package app

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/mkvimball/internal/ctxlog"
	"github.com/specialistvlad/mkvimball/internal/pathsource"
	"github.com/specialistvlad/mkvimball/internal/vimball"
)

// Run builds the archive described by the configuration. Unreadable source
// paths are logged and skipped; every other failure aborts the run. The
// archive is closed exactly once on every path out of Run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	base, src, err := a.plan(ctx)
	if err != nil {
		return err
	}

	archive, err := vimball.Create(base)
	if err != nil {
		return err
	}
	a.logger.Debug("Archive created.", "archive", archive.Name())

	if err := a.fill(ctx, archive, src); err != nil {
		if cerr := archive.Close(); cerr != nil {
			a.logger.Error("Failed to close archive after error.", "archive", archive.Name(), "error", cerr)
		}
		return err
	}
	if err := archive.Close(); err != nil {
		return fmt.Errorf("failed to close archive %s: %w", archive.Name(), err)
	}

	stats := archive.Stats()
	a.logger.Info("Archive written.",
		"archive", archive.Name(),
		"entries", stats.Entries,
		"skipped", stats.Skipped,
		"bytes", stats.Bytes,
	)
	a.logger.Debug("App.Run method finished.")
	return nil
}

// plan resolves the archive base name and the source of paths. Manifest
// files come first, followed by any paths from the command line. With
// neither, paths are read interactively.
func (a *App) plan(ctx context.Context) (string, pathsource.Source, error) {
	base := a.config.BaseName
	paths := a.config.Paths
	manifest := a.config.ManifestPath != ""

	if manifest {
		if a.loader == nil {
			return "", nil, errors.New("a manifest was given but no manifest loader is configured")
		}
		model, err := a.loader.Load(ctx, a.config.ManifestPath)
		if err != nil {
			return "", nil, fmt.Errorf("failed to load manifest: %w", err)
		}
		a.logger.Debug("Manifest loaded.", "manifest", model.Source, "name", model.Name, "files", len(model.Files))
		if base == "" {
			base = model.Name
		}
		paths = append(slices.Clone(model.Files), paths...)
	}

	if err := vimball.ValidateBase(base); err != nil {
		return "", nil, fmt.Errorf("invalid archive base name %q: %w", base, err)
	}

	if manifest || len(paths) > 0 {
		a.logger.Debug("Archiving listed paths.", "count", len(paths))
		return base, pathsource.FromArgs(paths), nil
	}

	a.logger.Debug("No paths given, reading paths interactively.", "raw_input", a.config.RawInput)
	var opts []pathsource.PromptOption
	if a.config.RawInput {
		opts = append(opts, pathsource.WithRawLines())
	}
	return base, pathsource.NewPrompt(a.stdin, a.stdout, opts...), nil
}

// fill appends every path from src to archive, in order.
func (a *App) fill(ctx context.Context, archive *vimball.Writer, src pathsource.Source) error {
	logger := ctxlog.FromContext(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("archiving interrupted: %w", err)
		}

		path, ok, err := src.Next()
		if err != nil {
			// Same as running out of input: stop collecting, keep the archive.
			logger.Warn("Failed to read further paths, stopping.", "error", err)
			return nil
		}
		if !ok {
			return nil
		}

		entry, err := archive.Append(path)
		if errors.Is(err, vimball.ErrUnreadable) {
			logger.Warn("Unable to open file, skipping.", "path", path, "error", err)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to append %s: %w", path, err)
		}
		logger.Debug("Entry appended.", "path", entry.Path, "lines", entry.Lines, "bytes", entry.Size)
	}
}
