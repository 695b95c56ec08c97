package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/mkvimball/internal/config"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	stdin  io.Reader
	stdout io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// NewApp is the constructor for the main application. The interactive prompt
// reads stdin and writes stdout; all logging goes to logW through an
// isolated logger. loader is only used when the config names a manifest.
func NewApp(stdin io.Reader, stdout, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		stdin:  stdin,
		stdout: stdout,
		logger: logger,
		config: appConfig,
		loader: loader,
	}
}
