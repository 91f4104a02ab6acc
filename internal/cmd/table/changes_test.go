package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/menuboard/localemerge/internal/cmd/emoji"
	"github.com/menuboard/localemerge/pkg/reconcile"
	"github.com/menuboard/localemerge/pkg/tree"
)

func TestChangesToTableData(t *testing.T) {
	changes := &reconcile.Changeset{
		Additions: []reconcile.Addition{{Path: "b", Value: tree.String("World")}},
		Updates:   []reconcile.Update{{Path: "tags", From: tree.StringSeq{"a"}, To: tree.StringSeq{"a", "c"}}},
		Conflicts: []reconcile.Conflict{{Path: "msg", Reason: reconcile.ReasonPlaceholderMismatch}},
	}

	data := ChangesToTableData(changes)
	assert.Len(t, data.Headers, 4)
	assert.Equal(t, [][]string{
		{emoji.Added, "add", "b", `"World"`},
		{emoji.Updated, "update", "tags", `["a"] -> ["a","c"]`},
		{emoji.Conflict, "conflict", "msg", "placeholder-mismatch"},
	}, data.Rows)
}

func TestChangesToTableDataNil(t *testing.T) {
	data := ChangesToTableData(nil)
	assert.Empty(t, data.Rows)
	assert.NotEmpty(t, data.Headers)
}

func TestPathAndValue(t *testing.T) {
	assert.Equal(t, "(root)", Path(""))
	assert.Equal(t, "a.b", Path("a.b"))

	assert.Equal(t, `"<b>"`, Value(tree.String("<b>")))
	assert.Equal(t, "null", Value(tree.Null()))

	long := Value(tree.String(strings.Repeat("x", 100)))
	assert.Len(t, []rune(long), maxValueWidth)
	assert.True(t, strings.HasSuffix(long, "..."))
}
