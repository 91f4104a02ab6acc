package merge

import (
	"context"
	"io"

	"github.com/menuboard/localemerge/internal/appcontext"
	"github.com/menuboard/localemerge/internal/cmd/hints"
	"github.com/menuboard/localemerge/internal/cmd/output"
	pkgmerge "github.com/menuboard/localemerge/pkg/merge"
	"github.com/menuboard/localemerge/pkg/report"
	"github.com/menuboard/localemerge/pkg/save"
)

// ExecuteMerge runs one merge and prints the result to w.
func ExecuteMerge(ctx context.Context, app appcontext.Interface, flags *Flags, w io.Writer) error {
	logger := app.Logger()

	treeFormat, err := save.ParseFormat(flags.Format)
	if err != nil {
		return err
	}
	reportFormat, err := report.ParseFormat(flags.ReportFormat)
	if err != nil {
		return err
	}

	client, err := app.Client()
	if err != nil {
		return err
	}

	logger.Debug().
		Str("base", flags.Base).
		Str("incoming", flags.Incoming).
		Bool("dry_run", flags.DryRun).
		Msg("Starting merge")

	result, err := client.Merge(ctx,
		pkgmerge.WithBasePath(flags.Base),
		pkgmerge.WithIncomingPath(flags.Incoming),
		pkgmerge.WithOutputPath(flags.Output),
		pkgmerge.WithReportPath(flags.Report),
		pkgmerge.WithOutputFormat(treeFormat),
		pkgmerge.WithReportFormat(reportFormat),
		pkgmerge.WithDryRun(flags.DryRun),
		pkgmerge.WithTimeout(flags.Timeout),
	)
	if err != nil {
		return err
	}

	format := output.DetectFormat(app.OutputFormat())
	if err := output.FormatResult(w, format, result); err != nil {
		return err
	}

	// Hints would break machine-readable output
	if format != output.FormatTable {
		return nil
	}
	_, err = io.WriteString(w, hints.Format(hints.Default().GetHints(hints.Context{
		Command:   "merge",
		Succeeded: true,
		DryRun:    result.DryRun,
		Conflicts: result.Stats().Conflicts,
		Base:      flags.Base,
		Incoming:  flags.Incoming,
		Report:    flags.Report,
	})))
	return err
}
