package tree

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/menuboard/localemerge/pkg/errors"
)

// FromAny converts a decoded document (as produced by JSON, JSON5, YAML or
// TOML decoders) into a Node. Integers of any width become float64 numbers,
// timestamps become strings, and non-string mapping keys are formatted with
// fmt. Non-finite numbers and unsupported Go types are rejected.
func FromAny(v any) (Node, error) {
	switch val := v.(type) {
	case nil:
		return Null(), nil
	case Node:
		return val, nil
	case string:
		return String(val), nil
	case bool:
		return Bool(val), nil
	case float64:
		if math.IsInf(val, 0) || math.IsNaN(val) {
			return nil, errors.NewValidationError("number", val, "non-finite numbers are not supported")
		}
		return Number(val), nil
	case float32:
		return FromAny(float64(val))
	case int:
		return Number(float64(val)), nil
	case int8:
		return Number(float64(val)), nil
	case int16:
		return Number(float64(val)), nil
	case int32:
		return Number(float64(val)), nil
	case int64:
		return Number(float64(val)), nil
	case uint:
		return Number(float64(val)), nil
	case uint8:
		return Number(float64(val)), nil
	case uint16:
		return Number(float64(val)), nil
	case uint32:
		return Number(float64(val)), nil
	case uint64:
		return Number(float64(val)), nil
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return nil, errors.NewValidationError("number", val.String(), err.Error())
		}
		return FromAny(f)
	case time.Time:
		return String(val.Format(time.RFC3339Nano)), nil
	case []string:
		return StringSeq(append([]string(nil), val...)), nil
	case []any:
		elems := make([]Node, len(val))
		for i, e := range val {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			elems[i] = n
		}
		return Seq(elems...), nil
	case []map[string]any:
		elems := make([]Node, len(val))
		for i, e := range val {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			elems[i] = n
		}
		return MixedSeq(elems), nil
	case map[string]any:
		m := make(Mapping, len(val))
		for k, e := range val {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return m, nil
	case map[any]any:
		m := make(Mapping, len(val))
		for k, e := range val {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[fmt.Sprint(k)] = n
		}
		return m, nil
	case fmt.Stringer:
		return String(val.String()), nil
	}
	return nil, errors.NewValidationError("value", v, fmt.Sprintf("unsupported type %T", v))
}

// ToAny converts a Node back into plain Go values: map[string]any, []any,
// string, float64, bool and nil.
func ToAny(n Node) any {
	switch v := n.(type) {
	case Mapping:
		out := make(map[string]any, len(v))
		for k, child := range v {
			out[k] = ToAny(child)
		}
		return out
	case StringSeq:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	case MixedSeq:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = ToAny(e)
		}
		return out
	case String:
		return string(v)
	case Primitive:
		return v.Value
	}
	return nil
}

// Equal reports whether two nodes are deeply equal. A nil Node equals null.
func Equal(a, b Node) bool {
	if a == nil {
		a = Null()
	}
	if b == nil {
		b = Null()
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case Mapping:
		bv := b.(Mapping)
		if len(av) != len(bv) {
			return false
		}
		for k, child := range av {
			other, ok := bv[k]
			if !ok || !Equal(child, other) {
				return false
			}
		}
		return true
	case StringSeq:
		bv := b.(StringSeq)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case MixedSeq:
		bv := b.(MixedSeq)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case String:
		return av == b.(String)
	case Primitive:
		return av.Value == b.(Primitive).Value
	}
	return false
}
