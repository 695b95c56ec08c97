package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/mkvimball/internal/vimball"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	BaseName     string   // archive name without the .vba suffix
	Paths        []string // source paths from the command line
	ManifestPath string   // optional manifest naming the archive and its files
	RawInput     bool     // keep interactive lines untrimmed

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.BaseName == "" && cfg.ManifestPath == "" {
		return nil, errors.New("an archive base name is required when no manifest is given")
	}
	if cfg.BaseName != "" {
		if err := vimball.ValidateBase(cfg.BaseName); err != nil {
			return nil, fmt.Errorf("invalid archive base name %q: %w", cfg.BaseName, err)
		}
	}
	return &cfg, nil
}
