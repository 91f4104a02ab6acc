package output

import (
	"fmt"
	"io"

	"github.com/menuboard/localemerge/internal/cmd/emoji"
	"github.com/menuboard/localemerge/internal/cmd/table"
	"github.com/menuboard/localemerge/pkg/merge"
	"github.com/menuboard/localemerge/pkg/reconcile"
)

// Summary is the machine-readable view of a merge run.
type Summary struct {
	Additions  int                  `json:"additions" yaml:"additions"`
	Updates    int                  `json:"updates" yaml:"updates"`
	Conflicts  int                  `json:"conflicts" yaml:"conflicts"`
	DryRun     bool                 `json:"dry_run" yaml:"dry_run"`
	Output     string               `json:"output" yaml:"output"`
	Report     string               `json:"report" yaml:"report"`
	DurationMS int64                `json:"duration_ms" yaml:"duration_ms"`
	Records    *reconcile.Changeset `json:"records" yaml:"records"`
}

// NewSummary builds the Summary of result.
func NewSummary(result *merge.Result) Summary {
	s := result.Stats()
	changes := result.Changeset
	if changes == nil {
		changes = &reconcile.Changeset{}
	}
	return Summary{
		Additions:  s.Additions,
		Updates:    s.Updates,
		Conflicts:  s.Conflicts,
		DryRun:     result.DryRun,
		Output:     result.OutputPath,
		Report:     result.ReportPath,
		DurationMS: result.Duration.Milliseconds(),
		Records:    changes,
	}
}

// FormatResult writes a merge result. Tables list every record followed
// by a one-line status; JSON and YAML emit the Summary.
func FormatResult(w io.Writer, format Format, result *merge.Result) error {
	if format == FormatJSON || format == FormatYAML {
		return NewFormatter(format).Format(w, NewSummary(result))
	}

	data := table.ChangesToTableData(result.Changeset)
	if len(data.Rows) > 0 {
		if err := NewFormatter(FormatTable).Format(w, data); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%s %s\n", statusSymbol(result), result.Summary())
	if err != nil {
		return err
	}
	if result.DryRun {
		_, err = fmt.Fprintf(w, "%s dry run: %s and %s were not written\n", emoji.Info, result.OutputPath, result.ReportPath)
	}
	return err
}

func statusSymbol(result *merge.Result) string {
	if result.HasConflicts() {
		return emoji.Warning
	}
	return emoji.Success
}
