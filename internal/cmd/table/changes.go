// Package table converts merge records into rows for tabular CLI output.
package table

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/menuboard/localemerge/internal/cmd/emoji"
	"github.com/menuboard/localemerge/pkg/reconcile"
	"github.com/menuboard/localemerge/pkg/tree"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align
}

// maxValueWidth caps rendered values so long strings do not blow up the table.
const maxValueWidth = 48

// ChangesToTableData lists every record, additions first, then updates,
// then conflicts, each in merge order.
func ChangesToTableData(changes *reconcile.Changeset) Data {
	data := Data{
		Headers:         []string{"", "CHANGE", "PATH", "DETAIL"},
		ColumnAlignment: []Align{AlignCenter, AlignLeft, AlignLeft, AlignLeft},
	}
	if changes == nil {
		return data
	}

	for _, a := range changes.Additions {
		data.Rows = append(data.Rows, []string{
			emoji.Added, string(reconcile.ChangeTypeAdd), Path(a.Path), Value(a.Value),
		})
	}
	for _, u := range changes.Updates {
		data.Rows = append(data.Rows, []string{
			emoji.Updated, string(reconcile.ChangeTypeUpdate), Path(u.Path),
			fmt.Sprintf("%s -> %s", Value(u.From), Value(u.To)),
		})
	}
	for _, c := range changes.Conflicts {
		data.Rows = append(data.Rows, []string{
			emoji.Conflict, string(reconcile.ChangeTypeConflict), Path(c.Path), c.Reason.String(),
		})
	}
	return data
}

// Path renders a dotted path, naming the root explicitly.
func Path(p string) string {
	if p == "" {
		return "(root)"
	}
	return p
}

// Value renders a node as compact JSON, truncated for display.
func Value(n tree.Node) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tree.ToAny(n)); err != nil {
		return fmt.Sprint(tree.ToAny(n))
	}
	return truncate(strings.TrimRight(buf.String(), "\n"), maxValueWidth)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}
