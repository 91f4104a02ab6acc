// Package placeholder extracts interpolation tokens from translation strings.
//
// Three token families are recognised and their matches unioned:
//
//	{name}     named brace tokens of letters, digits and underscores
//	%s %1$d    printf-style tokens with an optional positional index
//	{0}        numeric brace tokens
//
// Two strings are placeholder-compatible when their token sets are equal;
// order and repetition do not matter.
package placeholder

import (
	"regexp"
	"sort"

	"github.com/menuboard/localemerge/pkg/tree"
)

var patterns = []*regexp.Regexp{
	regexp.MustCompile(`\{[A-Za-z0-9_]+\}`),
	regexp.MustCompile(`%(\d+\$)?[sdif]`),
	regexp.MustCompile(`\{\d+\}`),
}

// Set is a deduplicated set of placeholder tokens.
type Set map[string]struct{}

// Sorted returns the tokens in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for tok := range s {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets hold the same tokens.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for tok := range s {
		if _, ok := other[tok]; !ok {
			return false
		}
	}
	return true
}

// Extract returns the placeholder tokens in text.
func Extract(text string) Set {
	set := make(Set)
	for _, re := range patterns {
		for _, tok := range re.FindAllString(text, -1) {
			set[tok] = struct{}{}
		}
	}
	return set
}

// FromNode extracts tokens from a String node. Any other node yields the
// empty set.
func FromNode(n tree.Node) Set {
	s, ok := n.(tree.String)
	if !ok {
		return make(Set)
	}
	return Extract(string(s))
}

// Same reports whether a and b carry the same placeholder tokens.
func Same(a, b tree.Node) bool {
	return FromNode(a).Equal(FromNode(b))
}
