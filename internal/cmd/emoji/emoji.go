// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

// Outcome symbols.
const (
	// Success represents a run that finished without conflicts.
	Success = "✓"

	// Error represents a run that stopped.
	Error = "✗"

	// Warning represents a run that finished with conflicts to review.
	Warning = "!"

	// Info represents informational messages such as dry-run notices.
	Info = "i"
)

// Record symbols used in change tables.
const (
	// Added marks a key copied from the incoming tree.
	Added = "+"

	// Updated marks a base value replaced or extended.
	Updated = "~"

	// Conflict marks a node kept as base for manual review.
	Conflict = "?"
)
