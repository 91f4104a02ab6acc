// Package tree models a translation tree: nested string-keyed mappings whose
// leaves are strings, sequences, or other JSON primitives.
//
// Every value is a Node, and each Node is exactly one of five shapes:
//
//	Mapping    keys to child nodes
//	StringSeq  a sequence whose elements are all strings (including the empty sequence)
//	MixedSeq   a sequence holding at least one non-string element
//	String     a text leaf
//	Primitive  null, a number or a boolean
//
// Nodes are treated as immutable once built; merging shares unchanged
// subtrees between its inputs and its output.
package tree

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
)

// Kind identifies the shape of a Node.
type Kind int

// Node kinds.
const (
	KindMapping Kind = iota
	KindStringSeq
	KindMixedSeq
	KindString
	KindPrimitive
)

// String returns the kind name used in logs and reports.
func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindStringSeq:
		return "string-sequence"
	case KindMixedSeq:
		return "mixed-sequence"
	case KindString:
		return "string"
	case KindPrimitive:
		return "primitive"
	}
	return "unknown"
}

// Node is a value in a translation tree.
type Node interface {
	Kind() Kind
	node()
}

// Mapping is an object node.
type Mapping map[string]Node

// StringSeq is a sequence of strings.
type StringSeq []string

// MixedSeq is a sequence with at least one element that is not a string.
type MixedSeq []Node

// String is a text leaf.
type String string

// Primitive is a null, number or boolean leaf. A nil Value is null.
// Numbers are always held as float64.
type Primitive struct {
	Value any
}

// Kind implements Node.
func (Mapping) Kind() Kind { return KindMapping }

// Kind implements Node.
func (StringSeq) Kind() Kind { return KindStringSeq }

// Kind implements Node.
func (MixedSeq) Kind() Kind { return KindMixedSeq }

// Kind implements Node.
func (String) Kind() Kind { return KindString }

// Kind implements Node.
func (Primitive) Kind() Kind { return KindPrimitive }

func (Mapping) node()   {}
func (StringSeq) node() {}
func (MixedSeq) node()  {}
func (String) node()    {}
func (Primitive) node() {}

// Null returns the null primitive.
func Null() Primitive { return Primitive{} }

// Number returns a numeric primitive.
func Number(f float64) Primitive { return Primitive{Value: f} }

// Bool returns a boolean primitive.
func Bool(b bool) Primitive { return Primitive{Value: b} }

// IsNull reports whether p is null.
func (p Primitive) IsNull() bool { return p.Value == nil }

// Keys returns the mapping's keys in sorted order.
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsSequence reports whether n is a StringSeq or a MixedSeq.
func IsSequence(n Node) bool {
	if n == nil {
		return false
	}
	k := n.Kind()
	return k == KindStringSeq || k == KindMixedSeq
}

// IsStructure reports whether n is a Mapping or a sequence.
func IsStructure(n Node) bool {
	return n != nil && (n.Kind() == KindMapping || IsSequence(n))
}

// Scalar returns the text form of a String or Primitive leaf. Null and a
// missing node read as the empty string, numbers use their shortest decimal
// form. ok is false for mappings and sequences.
func Scalar(n Node) (text string, ok bool) {
	switch v := n.(type) {
	case nil:
		return "", true
	case String:
		return string(v), true
	case Primitive:
		switch pv := v.Value.(type) {
		case nil:
			return "", true
		case bool:
			return strconv.FormatBool(pv), true
		case float64:
			if math.IsInf(pv, 0) || math.IsNaN(pv) {
				return strconv.FormatFloat(pv, 'g', -1, 64), true
			}
			return strconv.FormatFloat(pv, 'f', -1, 64), true
		}
	}
	return "", false
}

// Elements returns the elements of a sequence node as nodes.
func Elements(n Node) []Node {
	switch v := n.(type) {
	case StringSeq:
		out := make([]Node, len(v))
		for i, s := range v {
			out[i] = String(s)
		}
		return out
	case MixedSeq:
		return v
	}
	return nil
}

// Seq builds the sequence node for elems: a StringSeq when every element is a
// String, a MixedSeq otherwise.
func Seq(elems ...Node) Node {
	strs := make(StringSeq, 0, len(elems))
	for _, e := range elems {
		s, ok := e.(String)
		if !ok {
			return MixedSeq(elems)
		}
		strs = append(strs, string(s))
	}
	return strs
}

// MarshalJSON encodes the primitive as its bare value.
func (p Primitive) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Value)
}

// MarshalYAML encodes the primitive as its bare value.
func (p Primitive) MarshalYAML() (any, error) {
	return p.Value, nil
}
