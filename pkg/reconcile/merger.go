// Package reconcile merges an incoming translation tree into a base tree.
//
// Base is authoritative. Incoming values are adopted only where they fill a
// gap (a missing key, an empty string, a string not yet in the target
// script) or extend a string sequence. Every other disagreement is kept as
// base and recorded as a Conflict. Merging never fails: all outcomes are
// data in the returned Changeset.
package reconcile

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/menuboard/localemerge/pkg/logging"
	"github.com/menuboard/localemerge/pkg/placeholder"
	"github.com/menuboard/localemerge/pkg/tree"
)

// Merger merges translation trees. A Merger holds only configuration and
// may be reused and shared; each call gets its own change logs.
type Merger struct {
	logger *zerolog.Logger
	script ScriptDetector
}

// Option configures a Merger.
type Option func(*Merger)

// WithLogger sets the logger that receives one debug event per record.
func WithLogger(logger *zerolog.Logger) Option {
	return func(m *Merger) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithScriptDetector replaces the target-script test used to adopt
// incoming strings over base strings.
func WithScriptDetector(detect ScriptDetector) Option {
	return func(m *Merger) {
		if detect != nil {
			m.script = detect
		}
	}
}

// New creates a Merger.
func New(opts ...Option) *Merger {
	m := &Merger{
		logger: logging.Default(),
		script: ContainsArabic,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Merge is a convenience for New(opts...).Merge(base, incoming).
func Merge(base, incoming tree.Node, opts ...Option) (tree.Node, *Changeset) {
	return New(opts...).Merge(base, incoming)
}

// Merge combines base and incoming and returns the merged tree with the
// changes recorded along the way. Neither input is modified.
func (m *Merger) Merge(base, incoming tree.Node) (tree.Node, *Changeset) {
	r := &run{merger: m, changes: &Changeset{}}
	return r.merge(base, incoming, ""), r.changes
}

// run carries the change logs of a single merge.
type run struct {
	merger  *Merger
	changes *Changeset
}

func (r *run) merge(base, incoming tree.Node, path string) tree.Node {
	if base == nil {
		base = tree.Null()
	}
	if incoming == nil {
		incoming = tree.Null()
	}

	bm, baseIsMap := base.(tree.Mapping)
	im, incomingIsMap := incoming.(tree.Mapping)
	switch {
	case baseIsMap && incomingIsMap:
		return r.mapping(bm, im, path)
	case tree.IsSequence(base) && tree.IsSequence(incoming):
		return r.sequence(base, incoming, path)
	case base.Kind() == tree.KindString || incoming.Kind() == tree.KindString:
		return r.text(base, incoming, path)
	}

	if !tree.Equal(base, incoming) {
		r.conflict(path, base, incoming, ReasonTypeMismatch)
	}
	return base
}

func (r *run) mapping(base, incoming tree.Mapping, path string) tree.Node {
	keys := base.Keys()
	for _, k := range incoming.Keys() {
		if _, ok := base[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make(tree.Mapping, len(keys))
	for _, k := range keys {
		b, inBase := base[k]
		i, inIncoming := incoming[k]
		child := tree.Join(path, k)

		switch {
		case inBase && inIncoming:
			out[k] = r.merge(b, i, child)
		case inBase:
			out[k] = b
		default:
			out[k] = i
			r.addition(child, i)
		}
	}
	return out
}

func (r *run) sequence(base, incoming tree.Node, path string) tree.Node {
	bs, baseStrings := base.(tree.StringSeq)
	is, incomingStrings := incoming.(tree.StringSeq)
	if baseStrings && incomingStrings {
		seen := make(map[string]struct{}, len(bs))
		for _, s := range bs {
			seen[s] = struct{}{}
		}
		merged := append(tree.StringSeq{}, bs...)
		for _, s := range is {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			merged = append(merged, s)
		}
		if len(merged) == len(bs) {
			return base
		}
		r.update(path, base, merged)
		return merged
	}

	if !tree.Equal(base, incoming) {
		r.conflict(path, base, incoming, ReasonArrayShapeDiff)
	}
	return base
}

// text handles every pairing where at least one side is a string.
func (r *run) text(base, incoming tree.Node, path string) tree.Node {
	b, baseScalar := blankable(base)
	i, incomingScalar := blankable(incoming)

	switch {
	case b == "" && i != "":
		r.update(path, base, incoming)
		return incoming
	case b != "" && i == "":
		return base
	case b == i:
		return base
	case !baseScalar || !incomingScalar:
		r.conflict(path, base, incoming, ReasonTypeMismatch)
		return base
	case !placeholder.Same(base, incoming):
		r.conflict(path, base, incoming, ReasonPlaceholderMismatch)
		return base
	case !r.merger.script(b) && r.merger.script(i):
		r.update(path, base, incoming)
		return incoming
	default:
		r.conflict(path, base, incoming, ReasonStringDiff)
		return base
	}
}

// blankable returns the trimmed text of a scalar. Structures have no text;
// they read as "" when empty and as a marker that never equals real text
// otherwise, so an empty side still yields to a filled one.
func blankable(n tree.Node) (text string, scalar bool) {
	if s, ok := tree.Scalar(n); ok {
		return strings.TrimSpace(s), true
	}
	switch v := n.(type) {
	case tree.Mapping:
		if len(v) == 0 {
			return "", false
		}
	case tree.StringSeq:
		if len(v) == 0 {
			return "", false
		}
	case tree.MixedSeq:
		if len(v) == 0 {
			return "", false
		}
	}
	return "\x00" + n.Kind().String(), false
}

func (r *run) addition(path string, value tree.Node) {
	r.changes.Additions = append(r.changes.Additions, Addition{Path: path, Value: value})
	r.merger.logger.Debug().
		Str("path", path).
		Str("change", string(ChangeTypeAdd)).
		Msg("Incoming key added")
}

func (r *run) update(path string, from, to tree.Node) {
	r.changes.Updates = append(r.changes.Updates, Update{Path: path, From: from, To: to})
	r.merger.logger.Debug().
		Str("path", path).
		Str("change", string(ChangeTypeUpdate)).
		Msg("Base value updated")
}

func (r *run) conflict(path string, base, incoming tree.Node, reason ConflictReason) {
	r.changes.Conflicts = append(r.changes.Conflicts, Conflict{
		Path:     path,
		Base:     base,
		Incoming: incoming,
		Reason:   reason,
	})
	r.merger.logger.Debug().
		Str("path", path).
		Str("change", string(ChangeTypeConflict)).
		Str("reason", reason.String()).
		Msg("Conflict kept base value")
}
