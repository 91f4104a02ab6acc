package merge

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/menuboard/localemerge/internal/appcontext"
	"github.com/menuboard/localemerge/pkg/constants"
)

// Flags holds the merge command flags.
type Flags struct {
	Base         string
	Incoming     string
	Output       string
	Report       string
	Format       string
	ReportFormat string
	DryRun       bool
	Timeout      time.Duration
}

// addMergeFlags registers the merge flags with settings as defaults.
func addMergeFlags(cmd *cobra.Command, settings appcontext.Settings) *Flags {
	flags := &Flags{}

	cmd.Flags().StringVar(&flags.Base, "base", settings.Base, "base (authoritative) tree")
	cmd.Flags().StringVar(&flags.Incoming, "incoming", settings.Incoming, "incoming (candidate) tree")
	cmd.Flags().StringVar(&flags.Output, "out", settings.Output, "merged tree output path")
	cmd.Flags().StringVar(&flags.Report, "report", settings.Report, "report output path")
	cmd.Flags().StringVar(&flags.Format, "format", settings.Format, "merged tree format: json, yaml")
	cmd.Flags().StringVar(&flags.ReportFormat, "report-format", settings.ReportFormat, "report format: markdown, json")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", settings.DryRun, "compute the merge without writing files")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", constants.CommandTimeout, "timeout for the whole run (0 disables)")

	return flags
}

// resolveFlags replaces unset flags with the current settings, which may
// have changed after --config was parsed.
func resolveFlags(cmd *cobra.Command, flags *Flags, settings appcontext.Settings) {
	pick := func(name string, target *string, value string) {
		if !cmd.Flags().Changed(name) {
			*target = value
		}
	}
	pick("base", &flags.Base, settings.Base)
	pick("incoming", &flags.Incoming, settings.Incoming)
	pick("out", &flags.Output, settings.Output)
	pick("report", &flags.Report, settings.Report)
	pick("format", &flags.Format, settings.Format)
	pick("report-format", &flags.ReportFormat, settings.ReportFormat)
	if !cmd.Flags().Changed("dry-run") {
		flags.DryRun = settings.DryRun
	}
}
