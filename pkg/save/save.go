// Package save renders merged translation trees to canonical text and
// writes them out.
//
// Output is byte-stable: mapping keys are sorted at every level, sequences
// keep their merged order, indentation is two spaces and the document ends
// with exactly one newline. Two trees holding the same keys and values
// always serialize identically, whatever order their maps were built in.
package save

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/menuboard/localemerge/pkg/constants"
	"github.com/menuboard/localemerge/pkg/errors"
	"github.com/menuboard/localemerge/pkg/tree"
)

// Marshal renders n in the given format.
func Marshal(n tree.Node, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return marshalJSON(n)
	case FormatYAML:
		return marshalYAML(n)
	}
	return nil, errors.NewValidationError("format", format.String(), "unsupported output format")
}

// Tree renders n and writes it to the configured writer, or to the
// configured path, creating parent directories as needed.
func Tree(n tree.Node, opts ...Option) error {
	options := Defaults().Apply(opts...)
	if !options.Format().IsValid() {
		return errors.NewValidationError("format", options.Format().String(), "unsupported output format")
	}

	data, err := Marshal(n, options.Format())
	if err != nil {
		return err
	}
	return Write(data, opts...)
}

// Write sends already rendered bytes to the configured destination.
func Write(data []byte, opts ...Option) error {
	options := Defaults().Apply(opts...)

	if w := options.Writer(); w != nil {
		if _, err := w.Write(data); err != nil {
			return errors.WrapIO("write", options.Path(), err)
		}
		return nil
	}

	path := options.Path()
	if path == "" {
		return &errors.ConfigError{Component: "save", Message: "no output path or writer configured"}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// marshalJSON relies on encoding/json sorting map keys.
func marshalJSON(n tree.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", constants.Indent)
	if err := enc.Encode(tree.ToAny(n)); err != nil {
		return nil, errors.WrapValidation("tree", err)
	}
	return buf.Bytes(), nil
}

func marshalYAML(n tree.Node) ([]byte, error) {
	data, err := yaml.MarshalWithOptions(
		ordered(n),
		yaml.Indent(constants.IndentWidth),
		yaml.IndentSequence(true),
	)
	if err != nil {
		return nil, errors.WrapValidation("tree", err)
	}
	data = bytes.TrimRight(data, "\n")
	return append(data, '\n'), nil
}

// ordered converts n into values whose mappings are yaml.MapSlice in key
// order, so the encoder cannot reorder them.
func ordered(n tree.Node) any {
	switch v := n.(type) {
	case tree.Mapping:
		out := make(yaml.MapSlice, 0, len(v))
		for _, k := range v.Keys() {
			out = append(out, yaml.MapItem{Key: k, Value: ordered(v[k])})
		}
		return out
	case tree.StringSeq:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	case tree.MixedSeq:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = ordered(e)
		}
		return out
	case tree.Primitive:
		// Whole numbers print as integers, matching the JSON encoder.
		if f, ok := v.Value.(float64); ok && f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f)
		}
	}
	return tree.ToAny(n)
}
