package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/specialistvlad/jobseq/internal/config"
	"github.com/specialistvlad/jobseq/internal/hcl_adapter"
	"github.com/specialistvlad/jobseq/internal/text_adapter"
	"github.com/specialistvlad/jobseq/internal/yaml_adapter"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	inR     io.Reader
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loaders map[string]config.Loader
}

// coreLoaders returns every input format compiled into the binary.
func coreLoaders() []config.Loader {
	return []config.Loader{
		text_adapter.NewLoader(),
		hcl_adapter.NewLoader(),
		yaml_adapter.NewLoader(),
	}
}

// NewApp is the constructor for the main application. The sequence is
// written to outW and logs to logW. When no loaders are given, all core
// loaders are registered.
func NewApp(inR io.Reader, outW, logW io.Writer, appConfig *Config, loaders ...config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW).
		With("run_id", uuid.NewString())
	logger.Debug("Logger configured successfully.")

	if len(loaders) == 0 {
		loaders = coreLoaders()
	}
	byExt := make(map[string]config.Loader)
	for _, l := range loaders {
		for _, ext := range l.Extensions() {
			byExt[ext] = l
		}
	}
	logger.Debug("Loaders registered.", "count", len(loaders), "extensions", len(byExt))

	return &App{
		inR:     inR,
		outW:    outW,
		logger:  logger,
		config:  appConfig,
		loaders: byExt,
	}
}
