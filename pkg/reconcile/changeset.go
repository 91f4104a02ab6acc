package reconcile

import (
	"fmt"
	"strings"

	"github.com/menuboard/localemerge/pkg/tree"
)

// ChangeType represents the kind of a recorded change.
type ChangeType string

const (
	// ChangeTypeAdd indicates a key present only in the incoming tree.
	ChangeTypeAdd ChangeType = "add"
	// ChangeTypeUpdate indicates the incoming value replaced or extended the base value.
	ChangeTypeUpdate ChangeType = "update"
	// ChangeTypeConflict indicates a disagreement resolved in favor of base.
	ChangeTypeConflict ChangeType = "conflict"
)

// ConflictReason tags why a conflict was recorded.
type ConflictReason string

// Conflict reasons.
const (
	ReasonPlaceholderMismatch ConflictReason = "placeholder-mismatch"
	ReasonStringDiff          ConflictReason = "string-diff"
	ReasonArrayShapeDiff      ConflictReason = "array-shape-diff"
	ReasonTypeMismatch        ConflictReason = "type-mismatch"
)

// String returns the reason tag.
func (r ConflictReason) String() string { return string(r) }

// Addition records a key that only the incoming tree carried.
type Addition struct {
	Path  string    `json:"path" yaml:"path"`
	Value tree.Node `json:"value" yaml:"value"`
}

// Update records a base value replaced or extended by the incoming tree.
type Update struct {
	Path string    `json:"path" yaml:"path"`
	From tree.Node `json:"from" yaml:"from"`
	To   tree.Node `json:"to" yaml:"to"`
}

// Conflict records a disagreement. The merged tree kept Base.
type Conflict struct {
	Path     string         `json:"path" yaml:"path"`
	Base     tree.Node      `json:"base" yaml:"base"`
	Incoming tree.Node      `json:"incoming" yaml:"incoming"`
	Reason   ConflictReason `json:"reason" yaml:"reason"`
}

// Changeset holds the three change logs of one merge, each in the order
// the merge walked the trees.
type Changeset struct {
	Additions []Addition `json:"additions" yaml:"additions"`
	Updates   []Update   `json:"updates" yaml:"updates"`
	Conflicts []Conflict `json:"conflicts" yaml:"conflicts"`
}

// ChangesetSummary counts records per log.
type ChangesetSummary struct {
	Additions int `json:"additions" yaml:"additions"`
	Updates   int `json:"updates" yaml:"updates"`
	Conflicts int `json:"conflicts" yaml:"conflicts"`
	Total     int `json:"total" yaml:"total"`
}

// Summary returns per-log counts.
func (c *Changeset) Summary() ChangesetSummary {
	if c == nil {
		return ChangesetSummary{}
	}
	s := ChangesetSummary{
		Additions: len(c.Additions),
		Updates:   len(c.Updates),
		Conflicts: len(c.Conflicts),
	}
	s.Total = s.Additions + s.Updates + s.Conflicts
	return s
}

// HasChanges reports whether the incoming tree altered the base tree.
func (c *Changeset) HasChanges() bool {
	return c != nil && (len(c.Additions) > 0 || len(c.Updates) > 0)
}

// HasConflicts reports whether any conflict was recorded.
func (c *Changeset) HasConflicts() bool {
	return c != nil && len(c.Conflicts) > 0
}

// IsEmpty reports whether all three logs are empty.
func (c *Changeset) IsEmpty() bool {
	return c.Summary().Total == 0
}

// String returns a one-line summary of the changeset.
func (c *Changeset) String() string {
	if c.IsEmpty() {
		return "No changes detected"
	}

	s := c.Summary()
	var parts []string
	if s.Additions > 0 {
		parts = append(parts, fmt.Sprintf("%d added", s.Additions))
	}
	if s.Updates > 0 {
		parts = append(parts, fmt.Sprintf("%d updated", s.Updates))
	}
	if s.Conflicts > 0 {
		parts = append(parts, fmt.Sprintf("%d conflicts", s.Conflicts))
	}
	return fmt.Sprintf("Changeset: %s (Total: %d)", strings.Join(parts, ", "), s.Total)
}
