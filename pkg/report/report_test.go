package report_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuboard/localemerge/pkg/reconcile"
	"github.com/menuboard/localemerge/pkg/report"
	"github.com/menuboard/localemerge/pkg/tree"
)

func fullChangeset() *reconcile.Changeset {
	return &reconcile.Changeset{
		Additions: []reconcile.Addition{{Path: "b", Value: tree.String("World")}},
		Updates:   []reconcile.Update{{Path: "greet", From: tree.String(""), To: tree.String("مرحبا")}},
		Conflicts: []reconcile.Conflict{{
			Path:     "msg",
			Base:     tree.String("Hello {name}"),
			Incoming: tree.String("Hi {user}"),
			Reason:   reconcile.ReasonPlaceholderMismatch,
		}},
	}
}

func TestMarkdownAllSections(t *testing.T) {
	got, err := report.Render(fullChangeset(), report.FormatMarkdown)
	require.NoError(t, err)

	want := "# Translation merge report\n" +
		"\n" +
		"Additions: **1** | Updates: **1** | Conflicts: **1**\n" +
		"\n" +
		"## Additions\n" +
		"\n" +
		"- `b`: \"World\"\n" +
		"\n" +
		"## Updates\n" +
		"\n" +
		"- `greet`: \"\" -> \"مرحبا\"\n" +
		"\n" +
		"## Conflicts\n" +
		"\n" +
		"- `msg`: base \"Hello {name}\", incoming \"Hi {user}\" (placeholder-mismatch)\n"
	assert.Equal(t, want, string(got))
}

func TestMarkdownOmitsEmptySections(t *testing.T) {
	cs := &reconcile.Changeset{
		Updates: []reconcile.Update{{Path: "tags", From: tree.StringSeq{"a", "b"}, To: tree.StringSeq{"a", "b", "c"}}},
	}
	got, err := report.Markdown(cs)
	require.NoError(t, err)

	text := string(got)
	assert.Contains(t, text, "Additions: **0** | Updates: **1** | Conflicts: **0**")
	assert.Contains(t, text, "- `tags`: [\"a\",\"b\"] -> [\"a\",\"b\",\"c\"]")
	assert.NotContains(t, text, "## Additions")
	assert.NotContains(t, text, "## Conflicts")
}

func TestMarkdownKeepsEveryRecord(t *testing.T) {
	cs := &reconcile.Changeset{
		Conflicts: []reconcile.Conflict{
			{Path: "a", Base: tree.Number(1), Incoming: tree.Number(2), Reason: reconcile.ReasonTypeMismatch},
			{Path: "a", Base: tree.Number(1), Incoming: tree.Number(2), Reason: reconcile.ReasonTypeMismatch},
			{Path: "", Base: tree.Null(), Incoming: tree.Bool(true), Reason: reconcile.ReasonTypeMismatch},
		},
	}
	got, err := report.Markdown(cs)
	require.NoError(t, err)

	text := string(got)
	assert.Equal(t, 2, strings.Count(text, "- `a`: base 1, incoming 2 (type-mismatch)"))
	assert.Contains(t, text, "- `(root)`: base null, incoming true (type-mismatch)")
}

func TestMarkdownPathsWithBackticks(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"menu.`code`", "- `` menu.`code` ``: \"x\""},
		{"a``b", "- ``` a``b ```: \"x\""},
		{"`", "- `` ` ``: \"x\""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := report.Markdown(&reconcile.Changeset{
				Additions: []reconcile.Addition{{Path: tt.path, Value: tree.String("x")}},
			})
			require.NoError(t, err)
			assert.Contains(t, string(got), tt.want+"\n")
		})
	}
}

func TestMarkdownEmpty(t *testing.T) {
	got, err := report.Render(nil, report.FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, "# Translation merge report\n\nAdditions: **0** | Updates: **0** | Conflicts: **0**\n", string(got))
}

func TestJSONReport(t *testing.T) {
	got, err := report.Render(fullChangeset(), report.FormatJSON)
	require.NoError(t, err)

	var doc struct {
		Summary   reconcile.ChangesetSummary `json:"summary"`
		Additions []map[string]any           `json:"additions"`
		Conflicts []map[string]any           `json:"conflicts"`
	}
	require.NoError(t, json.Unmarshal(got, &doc))
	assert.Equal(t, 3, doc.Summary.Total)
	assert.Equal(t, "World", doc.Additions[0]["value"])
	assert.Equal(t, "placeholder-mismatch", doc.Conflicts[0]["reason"])

	empty, err := report.JSON(&reconcile.Changeset{})
	require.NoError(t, err)
	assert.Contains(t, string(empty), `"additions": []`)
}

func TestParseFormat(t *testing.T) {
	f, err := report.ParseFormat("MD")
	require.NoError(t, err)
	assert.Equal(t, report.FormatMarkdown, f)

	f, err = report.ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, report.FormatJSON, f)

	_, err = report.ParseFormat("html")
	assert.Error(t, err)
}
