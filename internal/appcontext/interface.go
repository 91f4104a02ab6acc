// Package appcontext provides the shared application context interface
// used by all commands. This eliminates interface duplication across
// command packages and provides a single source of truth for app dependencies.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/menuboard/localemerge"
)

// Settings are the configured defaults commands use for their flags.
type Settings struct {
	Base           string
	Incoming       string
	Output         string
	Report         string
	Format         string
	ReportFormat   string
	DryRun         bool
	FallbackLocale string
}

// Interface defines the application context interface that commands need.
// The App struct from cmd/localemerge/app implements this interface,
// providing dependency injection for commands while maintaining testability.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with mock implementations.
type Interface interface {
	// Client returns the merge client, creating it lazily if needed.
	Client() (localemerge.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// Settings returns the configured flag defaults.
	Settings() Settings

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
