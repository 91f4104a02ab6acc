package merge

import (
	"fmt"
	"time"

	"github.com/menuboard/localemerge/pkg/reconcile"
	"github.com/menuboard/localemerge/pkg/tree"
)

// Result represents the complete result of a merge run.
type Result struct {
	Merged    tree.Mapping         // The merged tree
	Changeset *reconcile.Changeset // Additions, updates and conflicts in merge order

	// Operation metadata
	DryRun     bool          // Whether outputs were withheld
	OutputPath string        // Where the merged tree was (or would be) written
	ReportPath string        // Where the report was (or would be) written
	Duration   time.Duration // Wall time of the run
}

// HasChanges returns true if the merge recorded any addition or update.
func (r *Result) HasChanges() bool {
	return r != nil && r.Changeset.HasChanges()
}

// HasConflicts returns true if any node needs manual review.
func (r *Result) HasConflicts() bool {
	return r != nil && r.Changeset.HasConflicts()
}

// Stats returns the record counts.
func (r *Result) Stats() reconcile.ChangesetSummary {
	if r == nil {
		return reconcile.ChangesetSummary{}
	}
	return r.Changeset.Summary()
}

// Summary returns a human-readable summary of the merge result.
func (r *Result) Summary() string {
	s := r.Stats()
	if s.Total == 0 {
		return "No changes detected"
	}

	summary := fmt.Sprintf("%d added, %d updated, %d conflicts", s.Additions, s.Updates, s.Conflicts)
	if r.DryRun {
		summary += " (Dry run)"
	}
	return summary
}
