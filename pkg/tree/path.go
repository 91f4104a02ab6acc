package tree

import (
	"sort"
	"strings"

	"github.com/menuboard/localemerge/pkg/constants"
)

// Join appends key to a dotted path. The root path is the empty string.
func Join(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + constants.PathSeparator + key
}

// Paths returns the dotted path of every node below the root, in sorted
// order. Sequence elements are leaves and are not addressed individually.
func Paths(n Node) []string {
	var out []string
	var walk func(prefix string, node Node)
	walk = func(prefix string, node Node) {
		m, ok := node.(Mapping)
		if !ok {
			return
		}
		for _, k := range m.Keys() {
			p := Join(prefix, k)
			out = append(out, p)
			walk(p, m[k])
		}
	}
	walk("", n)
	sort.Strings(out)
	return out
}

// Lookup resolves a dotted path against n.
func Lookup(n Node, path string) (Node, bool) {
	if path == "" {
		return n, n != nil
	}
	current := n
	for _, key := range strings.Split(path, constants.PathSeparator) {
		m, ok := current.(Mapping)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Strings returns every String leaf keyed by its dotted path.
func Strings(n Node) map[string]string {
	out := make(map[string]string)
	var walk func(prefix string, node Node)
	walk = func(prefix string, node Node) {
		switch v := node.(type) {
		case Mapping:
			for k, child := range v {
				walk(Join(prefix, k), child)
			}
		case String:
			out[prefix] = string(v)
		}
	}
	walk("", n)
	return out
}
