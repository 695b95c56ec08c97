package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/mkvimball/internal/app"
)

const (
	usageError = "***error*** (mkvimball) Usage: mkvimball vimballfile [path1 path2 ...]"
	dotError   = usageError + "   (vimballfile should have no '.' in it)"
	dashHint   = "   (put -- before a vimballfile that starts with '-')"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("mkvimball", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
mkvimball - Bundle files into a vimball (.vba) archive.

Usage:
  mkvimball [options] <vimballfile> [path1 path2 ...]
  mkvimball [options] -manifest FILE [vimballfile] [path ...]
  mkvimball [options] -- -vimballfile [path ...]

Arguments:
  vimballfile
    Archive name without extension; must not contain '.'.
    The archive is written to <vimballfile>.vba. A name starting with '-'
    must follow "--" so it is not read as an option.
  path
    Files to archive, in order. With no paths and no manifest, paths are
    read from standard input, one per line. Lines containing '#' are
    comments; 'q' or 'quit' ends input.

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.String("manifest", "", "Path to an HCL manifest naming the archive and its files.")
	mFlag := flagSet.String("m", "", "Path to an HCL manifest (shorthand).")
	rawInputFlag := flagSet.Bool("raw-input", false, "Keep interactive lines exactly as typed, including the newline.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 1, Message: fmt.Sprintf("%s: %v%s", usageError, err, dashHint)}
	}
	slog.Debug("Arguments parsed successfully.")

	manifest := *manifestFlag
	if manifest == "" {
		manifest = *mFlag
	}

	var base string
	var paths []string
	if flagSet.NArg() > 0 {
		base = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		paths = flagSet.Args()[1:]
	}
	slog.Debug("Archive target determined.", "base", base, "manifest", manifest, "paths", len(paths))

	if base == "" && manifest == "" {
		return nil, false, &ExitError{Code: 1, Message: usageError}
	}
	if strings.Contains(base, ".") {
		return nil, false, &ExitError{Code: 1, Message: dotError}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 1, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 1, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		BaseName:     base,
		Paths:        paths,
		ManifestPath: manifest,
		RawInput:     *rawInputFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
