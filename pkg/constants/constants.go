// Package constants provides shared constants used throughout localemerge.
// This includes the tool-defined file locations, output formatting and
// file permissions that must stay consistent between the CLI and the library.
package constants

import "time"

// Path constants define where the merge tool reads and writes by default.
const (
	// DefaultBasePath is the authoritative translation tree
	DefaultBasePath = "locales/base.json"

	// DefaultIncomingPath is the candidate translation tree
	DefaultIncomingPath = "locales/incoming.json"

	// DefaultOutputPath is where the merged tree is written
	DefaultOutputPath = "locales/merged.json"

	// DefaultReportPath is where the Markdown change report is written
	DefaultReportPath = "locales/merge-report.md"

	// DefaultConfigFile is the config file name searched in $HOME and the working directory
	DefaultConfigFile = ".localemerge"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Formatting constants
const (
	// IndentWidth is the number of spaces per nesting level in serialized trees
	IndentWidth = 2

	// Indent is the literal indentation unit written by the serializer
	Indent = "  "

	// PathSeparator joins keys into a dotted path
	PathSeparator = "."
)

// Locale defaults
const (
	// DefaultLocale is the language served when the requested one lacks a key
	DefaultLocale = "en"

	// DefaultTargetLocale is the language the incoming tree is expected to be written in
	DefaultTargetLocale = "ar"
)

// CommandTimeout is the default timeout for CLI commands
const CommandTimeout = 2 * time.Minute
