package app

import (
	"context"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vk/vizpipe/internal/config"
	"github.com/vk/vizpipe/internal/ctxlog"
	"github.com/vk/vizpipe/internal/hcl"
	"github.com/vk/vizpipe/internal/yamlspec"
	"go.uber.org/zap"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *zap.Logger
	config  *Config
	loaders map[string]config.Loader
}

// NewApp is the constructor for the main application. Compiled output goes
// to outW unless the config names a file; logs go to logW.
func NewApp(outW, logW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.", zap.String("format", appConfig.LogFormat))

	hclLoader := hcl.NewLoader()
	docLoader := yamlspec.NewLoader()

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		loaders: map[string]config.Loader{
			".hcl":  hclLoader,
			".json": docLoader,
			".yaml": docLoader,
			".yml":  docLoader,
		},
	}
}

// Extensions returns the chart file extensions the app can load.
func (a *App) Extensions() []string {
	return slices.Sorted(maps.Keys(a.loaders))
}

// loaderFor picks the loader registered for path's extension.
func (a *App) loaderFor(path string) (config.Loader, bool) {
	l, ok := a.loaders[strings.ToLower(filepath.Ext(path))]
	return l, ok
}

// context returns ctx carrying the app's logger.
func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
