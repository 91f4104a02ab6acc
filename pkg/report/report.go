// Package report renders the change logs of a merge for human review.
//
// The Markdown report opens with a count line and then lists Additions,
// Updates and Conflicts in their own sections. Empty sections are left
// out. Every record appears exactly once, in the order the merge
// produced it.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/menuboard/localemerge/pkg/constants"
	"github.com/menuboard/localemerge/pkg/errors"
	"github.com/menuboard/localemerge/pkg/reconcile"
	"github.com/menuboard/localemerge/pkg/tree"
)

// Title heads the Markdown report.
const Title = "Translation merge report"

// Format is a report syntax.
type Format int

// Report formats.
const (
	FormatMarkdown Format = iota
	FormatJSON
)

// IsValid reports whether f is a known report format.
func (f Format) IsValid() bool {
	return f == FormatMarkdown || f == FormatJSON
}

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatJSON:
		return "json"
	}
	return "unknown"
}

// ParseFormat parses a report format name. The empty string selects Markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatMarkdown, errors.NewValidationError("report_format", s, "must be markdown or json")
}

// Render renders changes in the given format.
func Render(changes *reconcile.Changeset, format Format) ([]byte, error) {
	if changes == nil {
		changes = &reconcile.Changeset{}
	}
	switch format {
	case FormatMarkdown:
		return Markdown(changes)
	case FormatJSON:
		return JSON(changes)
	}
	return nil, errors.NewValidationError("report_format", format.String(), "unsupported report format")
}

// Markdown renders the Markdown report.
func Markdown(changes *reconcile.Changeset) ([]byte, error) {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	s := changes.Summary()
	doc.H1(Title).
		PlainText("").
		PlainTextf("Additions: %s | Updates: %s | Conflicts: %s",
			md.Bold(fmt.Sprint(s.Additions)),
			md.Bold(fmt.Sprint(s.Updates)),
			md.Bold(fmt.Sprint(s.Conflicts)))

	if len(changes.Additions) > 0 {
		items := make([]string, len(changes.Additions))
		for i, a := range changes.Additions {
			items[i] = fmt.Sprintf("%s: %s", label(a.Path), value(a.Value))
		}
		section(doc, "Additions", items)
	}

	if len(changes.Updates) > 0 {
		items := make([]string, len(changes.Updates))
		for i, u := range changes.Updates {
			items[i] = fmt.Sprintf("%s: %s -> %s", label(u.Path), value(u.From), value(u.To))
		}
		section(doc, "Updates", items)
	}

	if len(changes.Conflicts) > 0 {
		items := make([]string, len(changes.Conflicts))
		for i, c := range changes.Conflicts {
			items[i] = fmt.Sprintf("%s: base %s, incoming %s (%s)",
				label(c.Path), value(c.Base), value(c.Incoming), c.Reason)
		}
		section(doc, "Conflicts", items)
	}

	if err := doc.Build(); err != nil {
		return nil, errors.WrapIO("render", "report", err)
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

func label(path string) string {
	if path == "" {
		return md.Code("(root)")
	}
	if !strings.Contains(path, "`") {
		return md.Code(path)
	}
	// A code span fence must be longer than any backtick run inside it.
	longest, run := 0, 0
	for _, r := range path {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	fence := strings.Repeat("`", longest+1)
	return fence + " " + path + " " + fence
}

func section(doc *md.Markdown, heading string, items []string) {
	doc.PlainText("").
		H2(heading).
		PlainText("").
		BulletList(items...)
}

// value renders a node as compact JSON.
func value(n tree.Node) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tree.ToAny(n)); err != nil {
		return fmt.Sprint(tree.ToAny(n))
	}
	return strings.TrimRight(buf.String(), "\n")
}

type document struct {
	Summary   reconcile.ChangesetSummary `json:"summary"`
	Additions []reconcile.Addition       `json:"additions"`
	Updates   []reconcile.Update         `json:"updates"`
	Conflicts []reconcile.Conflict       `json:"conflicts"`
}

// JSON renders the report as an indented JSON document with empty logs as
// empty arrays.
func JSON(changes *reconcile.Changeset) ([]byte, error) {
	doc := document{
		Summary:   changes.Summary(),
		Additions: append([]reconcile.Addition{}, changes.Additions...),
		Updates:   append([]reconcile.Update{}, changes.Updates...),
		Conflicts: append([]reconcile.Conflict{}, changes.Conflicts...),
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", constants.Indent)
	if err := enc.Encode(doc); err != nil {
		return nil, errors.WrapValidation("report", err)
	}
	return buf.Bytes(), nil
}
