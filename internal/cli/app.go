// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/dumbtip/internal/cli/styles"
	"github.com/bnema/dumbtip/internal/domain/build"
	"github.com/bnema/dumbtip/internal/infrastructure/config"
	"github.com/bnema/dumbtip/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	// LoadErr is the error Load returned, if any. Config then holds the
	// defaults so commands can still run and report it.
	LoadErr error

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	loadErr := mgr.Load()
	cfg := mgr.Get()

	logger := logging.New(logging.ConfigFromValues(cfg.Logging.Level, cfg.Logging.Format))
	ctx := logging.WithContext(context.Background(), logger)
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(cfg),
		LoadErr:       loadErr,
		ctx:           ctx,
	}, nil
}

// LogToFile replaces the stderr logger with one writing to path. The
// playground uses it so logs never land on the screen it draws.
func (a *App) LogToFile(path string) error {
	logger, cleanup, err := logging.NewFile(
		logging.ConfigFromValues(a.Config.Logging.Level, a.Config.Logging.Format), path)
	if err != nil {
		return err
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	a.logCleanup = cleanup
	a.ctx = logging.WithContext(context.Background(), logger)
	return nil
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.ctx)
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
