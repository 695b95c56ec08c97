package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/mkvimball/internal/config"
	"github.com/specialistvlad/mkvimball/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	environ []string
}

// Option configures a Loader.
type Option func(*Loader)

// WithEnviron replaces the process environment exposed to manifests as `env`.
func WithEnviron(environ []string) Option {
	return func(l *Loader) { l.environ = environ }
}

// NewLoader creates a new HCL manifest loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{environ: os.Environ()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load parses the manifest at path, evaluates its expressions, and returns
// the archive it describes. A manifest must contain exactly one vimball block.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL manifest loader started.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, l.evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	switch n := len(root.Vimballs); n {
	case 1:
	case 0:
		return nil, fmt.Errorf("manifest %s: no vimball block found", path)
	default:
		return nil, fmt.Errorf("manifest %s: expected exactly one vimball block, found %d", path, n)
	}

	block := root.Vimballs[0]
	model := &config.Model{
		Name:   block.Name,
		Files:  block.Files,
		Source: path,
	}

	logger.Debug("HCL manifest loading complete.", "name", model.Name, "files", len(model.Files))
	return model, nil
}
