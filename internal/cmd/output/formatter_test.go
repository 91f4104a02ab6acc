package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuboard/localemerge/internal/cmd/emoji"
	"github.com/menuboard/localemerge/pkg/merge"
	"github.com/menuboard/localemerge/pkg/reconcile"
	"github.com/menuboard/localemerge/pkg/tree"
)

func sampleResult() *merge.Result {
	return &merge.Result{
		Merged: tree.Mapping{"a": tree.String("Hello"), "b": tree.String("World")},
		Changeset: &reconcile.Changeset{
			Additions: []reconcile.Addition{{Path: "b", Value: tree.String("World")}},
			Conflicts: []reconcile.Conflict{{
				Path:     "msg",
				Base:     tree.String("Hello {name}"),
				Incoming: tree.String("Hi {user}"),
				Reason:   reconcile.ReasonPlaceholderMismatch,
			}},
		},
		OutputPath: "out/merged.json",
		ReportPath: "out/report.md",
		Duration:   1500 * time.Millisecond,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", "", false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"wide", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFormat(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
	assert.Equal(t, FormatJSON, DetectFormat("json"))
}

func TestJSONFormatterKeepsMarkup(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, map[string]string{"k": "<b>"}))
	assert.Equal(t, "{\n  \"k\": \"<b>\"\n}\n", buf.String())
}

func TestTableFormatterStruct(t *testing.T) {
	view := struct {
		Key  string   `json:"key"`
		List []string `json:"list_items"`
	}{Key: "menu.title", List: []string{"a", "b"}}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, view))

	out := buf.String()
	assert.Contains(t, out, "menu.title")
	assert.Contains(t, out, "List Items")
	assert.Contains(t, out, "a, b")
}

func TestFormatResultTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatResult(&buf, FormatTable, sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "placeholder-mismatch")
	assert.Contains(t, out, "msg")
	assert.True(t, strings.HasSuffix(out, emoji.Warning+" 1 added, 0 updated, 1 conflicts\n"))
}

func TestFormatResultNoChanges(t *testing.T) {
	var buf bytes.Buffer
	result := &merge.Result{Changeset: &reconcile.Changeset{}, DryRun: true, OutputPath: "o.json", ReportPath: "r.md"}
	require.NoError(t, FormatResult(&buf, FormatTable, result))

	assert.Equal(t,
		emoji.Success+" No changes detected\n"+emoji.Info+" dry run: o.json and r.md were not written\n",
		buf.String())
}

func TestFormatResultJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatResult(&buf, FormatJSON, sampleResult()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.EqualValues(t, 1, got["additions"])
	assert.EqualValues(t, 1, got["conflicts"])
	assert.EqualValues(t, 1500, got["duration_ms"])
	assert.Equal(t, "out/merged.json", got["output"])

	records := got["records"].(map[string]any)
	conflicts := records["conflicts"].([]any)
	assert.Equal(t, "placeholder-mismatch", conflicts[0].(map[string]any)["reason"])
}

func TestFormatResultYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatResult(&buf, FormatYAML, sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "additions: 1")
	assert.Contains(t, out, "reason: placeholder-mismatch")
}
