// Package merge implements the merge command.
package merge

import (
	"github.com/spf13/cobra"

	"github.com/menuboard/localemerge/internal/appcontext"
)

// NewCommand creates the merge command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var flags *Flags

	cmd := &cobra.Command{
		Use:     "merge [base] [incoming]",
		GroupID: "core",
		Short:   "Merge an incoming translation tree into the base tree",
		Args:    cobra.MaximumNArgs(2),
		Long: `Merge reads the base and incoming trees, reconciles them, and writes the
merged tree and a report of every addition, update and conflict.

Inputs may be relaxed JSON (comments, trailing commas, single quotes,
unquoted keys, smart quotes, byte order marks), YAML or TOML, chosen by
file extension. The root of each input must be a mapping.

Conflicts do not fail the command; review them in the report.`,
		Example: `  localemerge merge                                   # Use configured paths
  localemerge merge base.json incoming.json           # Explicit inputs
  localemerge merge --out merged.yaml --format yaml   # YAML output
  localemerge merge --report-format json              # JSON report
  localemerge merge --dry-run -o json                 # Preview as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolveFlags(cmd, flags, app.Settings())

			// Positional inputs take precedence over flags
			if len(args) > 0 {
				flags.Base = args[0]
			}
			if len(args) > 1 {
				flags.Incoming = args[1]
			}

			return ExecuteMerge(cmd.Context(), app, flags, cmd.OutOrStdout())
		},
	}

	flags = addMergeFlags(cmd, app.Settings())

	return cmd
}
