// Package loose reads hand-edited translation files into translation trees.
//
// Input is normalized before decoding: byte-order marks are dropped and
// typographic quotes are folded to their ASCII forms, so a file pasted out
// of a word processor still parses. JSON input is then decoded with the
// JSON5 grammar, which accepts comments, trailing commas, single-quoted
// strings and unquoted keys. YAML and TOML files are selected by extension.
package loose

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/titanous/json5"

	"github.com/menuboard/localemerge/pkg/errors"
	"github.com/menuboard/localemerge/pkg/tree"
)

// Format is an input document syntax.
type Format string

// Supported input formats.
const (
	FormatJSON5 Format = "json5"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

// String returns the format name.
func (f Format) String() string { return string(f) }

// FormatFromPath selects the decoder for a file name. Anything that is not
// YAML or TOML is read as loose JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON5
	}
}

var replacer = strings.NewReplacer(
	"\ufeff", "",
	"\u201c", `"`,
	"\u201d", `"`,
	"\u2018", "'",
	"\u2019", "'",
)

// Normalize strips byte-order marks, then folds curly double quotes to '"'
// and curly single quotes to '\''.
func Normalize(text string) string {
	return replacer.Replace(text)
}

// ParseFile reads and parses the file at path.
func ParseFile(path string) (tree.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapIO("read", path, errors.NewNotFoundError("file", path))
		}
		return nil, errors.WrapIO("read", path, err)
	}
	return Parse(path, data)
}

// Parse parses data as the format implied by name. name is used for format
// selection and error messages only.
func Parse(name string, data []byte) (tree.Mapping, error) {
	return ParseFormat(FormatFromPath(name), name, data)
}

// ParseFormat parses data with an explicit format. The document root must be
// a mapping.
func ParseFormat(format Format, name string, data []byte) (tree.Mapping, error) {
	text := []byte(Normalize(string(data)))

	var raw any
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(text, &raw)
		if err != nil {
			return nil, errors.NewParseError(format.String(), name, yaml.FormatError(err, false, false), err)
		}
	case FormatTOML:
		err = toml.Unmarshal(text, &raw)
		if err != nil {
			return nil, tomlError(name, err)
		}
	default:
		if len(bytes.TrimSpace(text)) == 0 {
			return nil, errors.NewParseError(format.String(), name, "empty document", nil)
		}
		err = json5.Unmarshal(text, &raw)
		if err != nil {
			return nil, json5Error(name, text, err)
		}
	}

	node, err := tree.FromAny(raw)
	if err != nil {
		return nil, errors.WrapParse(format.String(), name, err)
	}
	root, ok := node.(tree.Mapping)
	if !ok {
		return nil, errors.NewParseError(format.String(), name, "root must be a mapping, got "+node.Kind().String(), nil)
	}
	return root, nil
}

func json5Error(name string, text []byte, err error) error {
	pe := errors.NewParseError(FormatJSON5.String(), name, err.Error(), err)
	var syn *json5.SyntaxError
	if errors.As(err, &syn) {
		pe.Line, pe.Column = position(text, syn.Offset)
	}
	return pe
}

func tomlError(name string, err error) error {
	pe := errors.NewParseError(FormatTOML.String(), name, err.Error(), err)
	var de *toml.DecodeError
	if errors.As(err, &de) {
		pe.Line, pe.Column = de.Position()
	}
	return pe
}

// position converts a byte offset into a 1-based line and column.
func position(text []byte, offset int64) (line, column int) {
	if offset < 0 {
		return 0, 0
	}
	if offset > int64(len(text)) {
		offset = int64(len(text))
	}
	before := text[:offset]
	line = bytes.Count(before, []byte("\n")) + 1
	column = int(offset) - bytes.LastIndexByte(before, '\n')
	return line, column
}
