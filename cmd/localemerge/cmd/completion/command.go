// Package completion implements the completion command.
package completion

import (
	"io"

	"github.com/spf13/cobra"
)

// Supported shells.
const (
	ShellBash       = "bash"
	ShellZsh        = "zsh"
	ShellFish       = "fish"
	ShellPowerShell = "powershell"
)

type generator func(root *cobra.Command, w io.Writer) error

var shells = []struct {
	name  string
	usage string
	gen   generator
}{
	{
		name:  ShellBash,
		usage: "source <(localemerge completion bash)",
		gen:   func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	},
	{
		name:  ShellZsh,
		usage: `localemerge completion zsh > "${fpath[1]}/_localemerge"`,
		gen:   func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	},
	{
		name:  ShellFish,
		usage: "localemerge completion fish | source",
		gen:   func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	},
	{
		name:  ShellPowerShell,
		usage: "localemerge completion powershell | Out-String | Invoke-Expression",
		gen:   func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
	},
}

// NewCommand creates the completion command. It replaces cobra's default
// completion command so the scripts go to the command's writer.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate the autocompletion script for localemerge for the given shell.

Examples:
  source <(localemerge completion bash)
  localemerge completion zsh > "${fpath[1]}/_localemerge"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	for _, s := range shells {
		s := s
		cmd.AddCommand(&cobra.Command{
			Use:                   s.name,
			Short:                 "Generate " + s.name + " completion script",
			Long:                  "Generate the autocompletion script for " + s.name + ".\n\nTo load completions in your current shell session:\n\n  " + s.usage,
			Args:                  cobra.NoArgs,
			DisableFlagsInUseLine: true,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return s.gen(cmd.Root(), cmd.OutOrStdout())
			},
		})
	}

	return cmd
}
