package tree_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuboard/localemerge/pkg/errors"
	"github.com/menuboard/localemerge/pkg/tree"
)

func TestFromAnyShapes(t *testing.T) {
	doc := map[string]any{
		"title":   "Menu",
		"count":   int64(3),
		"price":   4.5,
		"active":  true,
		"removed": nil,
		"tags":    []any{"hot", "new"},
		"empty":   []any{},
		"mixed":   []any{"a", 1.0},
		"nested":  map[string]any{"greeting": "Hello"},
		"yamlMap": map[any]any{1: "one"},
	}

	n, err := tree.FromAny(doc)
	require.NoError(t, err)

	want := tree.Mapping{
		"title":   tree.String("Menu"),
		"count":   tree.Number(3),
		"price":   tree.Number(4.5),
		"active":  tree.Bool(true),
		"removed": tree.Null(),
		"tags":    tree.StringSeq{"hot", "new"},
		"empty":   tree.StringSeq{},
		"mixed":   tree.MixedSeq{tree.String("a"), tree.Number(1)},
		"nested":  tree.Mapping{"greeting": tree.String("Hello")},
		"yamlMap": tree.Mapping{"1": tree.String("one")},
	}
	if diff := cmp.Diff(want, n); diff != "" {
		t.Errorf("FromAny() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromAnyConversions(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want tree.Node
	}{
		{"json number", json.Number("12"), tree.Number(12)},
		{"uint", uint16(7), tree.Number(7)},
		{"timestamp", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), tree.String("2024-01-02T03:04:05Z")},
		{"string slice", []string{"a"}, tree.StringSeq{"a"}},
		{"table array", []map[string]any{{"k": "v"}}, tree.MixedSeq{tree.Mapping{"k": tree.String("v")}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tree.FromAny(tc.in)
			require.NoError(t, err)
			assert.True(t, tree.Equal(tc.want, got), "got %#v", got)
		})
	}
}

func TestFromAnyRejects(t *testing.T) {
	_, err := tree.FromAny(map[string]any{"bad": math.Inf(1)})
	assert.True(t, errors.IsValidationError(err))

	_, err = tree.FromAny(make(chan int))
	assert.True(t, errors.IsValidationError(err))
}

func TestToAnyRoundTrip(t *testing.T) {
	n := tree.Mapping{
		"a": tree.StringSeq{"x"},
		"b": tree.MixedSeq{tree.Bool(false), tree.Null()},
		"c": tree.Mapping{"d": tree.String("e")},
	}
	back, err := tree.FromAny(tree.ToAny(n))
	require.NoError(t, err)
	assert.True(t, tree.Equal(n, back))
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b tree.Node
		want bool
	}{
		{"nil equals null", nil, tree.Null(), true},
		{"strings", tree.String("a"), tree.String("a"), true},
		{"string vs number", tree.String("1"), tree.Number(1), false},
		{"seq order matters", tree.StringSeq{"a", "b"}, tree.StringSeq{"b", "a"}, false},
		{"mapping extra key", tree.Mapping{"a": tree.Null()}, tree.Mapping{"a": tree.Null(), "b": tree.Null()}, false},
		{"mixed deep", tree.MixedSeq{tree.Mapping{"k": tree.Number(1)}}, tree.MixedSeq{tree.Mapping{"k": tree.Number(1)}}, true},
		{"bools", tree.Bool(true), tree.Bool(false), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tree.Equal(tc.a, tc.b))
		})
	}
}

func TestScalar(t *testing.T) {
	tests := []struct {
		name   string
		in     tree.Node
		text   string
		scalar bool
	}{
		{"missing", nil, "", true},
		{"null", tree.Null(), "", true},
		{"string", tree.String(" hi "), " hi ", true},
		{"integer", tree.Number(42), "42", true},
		{"fraction", tree.Number(0.25), "0.25", true},
		{"bool", tree.Bool(true), "true", true},
		{"mapping", tree.Mapping{}, "", false},
		{"sequence", tree.StringSeq{"a"}, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text, ok := tree.Scalar(tc.in)
			assert.Equal(t, tc.scalar, ok)
			assert.Equal(t, tc.text, text)
		})
	}
}

func TestSeq(t *testing.T) {
	assert.Equal(t, tree.StringSeq{"a", "b"}, tree.Seq(tree.String("a"), tree.String("b")))
	assert.Equal(t, tree.StringSeq{}, tree.Seq())
	assert.Equal(t, tree.KindMixedSeq, tree.Seq(tree.String("a"), tree.Null()).Kind())
	assert.Len(t, tree.Elements(tree.StringSeq{"a", "b"}), 2)
}

func TestPathsAndLookup(t *testing.T) {
	n := tree.Mapping{
		"menu": tree.Mapping{
			"title": tree.String("Menu"),
			"items": tree.StringSeq{"tea"},
		},
		"footer": tree.String("Bye"),
	}

	assert.Equal(t, []string{"footer", "menu", "menu.items", "menu.title"}, tree.Paths(n))

	got, ok := tree.Lookup(n, "menu.title")
	require.True(t, ok)
	assert.Equal(t, tree.String("Menu"), got)

	_, ok = tree.Lookup(n, "menu.title.extra")
	assert.False(t, ok)
	_, ok = tree.Lookup(n, "missing")
	assert.False(t, ok)

	root, ok := tree.Lookup(n, "")
	assert.True(t, ok)
	assert.True(t, tree.Equal(n, root))

	assert.Equal(t, map[string]string{"menu.title": "Menu", "footer": "Bye"}, tree.Strings(n))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "mapping", tree.KindMapping.String())
	assert.Equal(t, "mixed-sequence", tree.MixedSeq{}.Kind().String())
	assert.Equal(t, "unknown", tree.Kind(99).String())
}
