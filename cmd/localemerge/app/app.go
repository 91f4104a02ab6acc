// Package app provides the application context and dependency management
// for the localemerge CLI. It centralizes configuration, logging and the
// merge client so commands receive their dependencies through
// appcontext.Interface.
package app

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/menuboard/localemerge"
	"github.com/menuboard/localemerge/internal/appcontext"
	"github.com/menuboard/localemerge/pkg/errors"
	"github.com/menuboard/localemerge/pkg/reconcile"
)

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// App represents the localemerge application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Command output (nil means stdout)
	out io.Writer

	// Client instance (lazy-initialized, singleton)
	mu     sync.RWMutex
	client localemerge.Client
}

// New creates a new App instance with the given version information.
// Configuration is loaded from files and the environment and can be
// replaced using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured stdout format.
func (a *App) OutputFormat() string {
	return a.config.OutputFormat
}

// Settings returns the configured flag defaults.
func (a *App) Settings() appcontext.Settings {
	return appcontext.Settings{
		Base:           a.config.Base,
		Incoming:       a.config.Incoming,
		Output:         a.config.Output,
		Report:         a.config.Report,
		Format:         a.config.Format,
		ReportFormat:   a.config.ReportFormat,
		DryRun:         a.config.DryRun,
		FallbackLocale: a.config.FallbackLocale,
	}
}

// Client returns the merge client, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Client() (localemerge.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	opts, err := a.buildClientOptions()
	if err != nil {
		return nil, err
	}
	c, err := localemerge.New(opts...)
	if err != nil {
		return nil, err
	}

	a.client = c
	return c, nil
}

// Shutdown performs graceful shutdown of the application. A merge holds no
// background work, so there is nothing to stop beyond flushing logs.
func (a *App) Shutdown(_ context.Context) error {
	a.logger.Debug().Msg("Shutdown complete")
	return nil
}

// buildClientOptions constructs client options from the app configuration.
func (a *App) buildClientOptions() ([]localemerge.Option, error) {
	opts := []localemerge.Option{localemerge.WithLogger(a.logger)}

	detector, err := scriptDetector(a.config.TargetScript)
	if err != nil {
		return nil, err
	}
	return append(opts, localemerge.WithScriptDetector(detector)), nil
}

// scriptDetector maps the target_script setting to a detector. Only the
// Arabic block is supported.
func scriptDetector(name string) (reconcile.ScriptDetector, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "arabic", "arab":
		return reconcile.ContainsArabic, nil
	}
	return nil, errors.NewConfigError("target_script", "unsupported script "+name+" (only arabic is supported)", nil)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewValidationError("config", nil, "config must not be nil")
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithOutput redirects command output (useful for testing).
func WithOutput(w io.Writer) Option {
	return func(a *App) error {
		a.out = w
		return nil
	}
}

// WithClient sets a custom client instance (useful for testing).
func WithClient(c localemerge.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}
