package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/menuboard/localemerge/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{Resource: "key", ID: "menu.title"}
		assert.Equal(t, "key menu.title not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("locale", "ar")
		wrapped := fmt.Errorf("lookup: %w", base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("format", "xml", "unsupported output format")
		assert.Equal(t, "validation failed for field format: unsupported output format", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "no input"}
		assert.Equal(t, "validation failed: no input", err.Error())
	})
}

func TestConfigError(t *testing.T) {
	cause := errors.New("bad yaml")
	err := pkgerrors.NewConfigError("config file", "could not load", cause)
	assert.Equal(t, "configuration error in config file: could not load", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := &pkgerrors.ConfigError{Message: "empty base path"}
	assert.Equal(t, "configuration error: empty base path", bare.Error())
}

func TestParseError(t *testing.T) {
	t.Run("with file and position", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "json5",
			File:    "locales/base.json",
			Line:    3,
			Column:  7,
			Message: "invalid character '}'",
		}
		assert.Equal(t, "parse error in json5 at locales/base.json:3:7: invalid character '}'", err.Error())
	})

	t.Run("with file only", func(t *testing.T) {
		err := pkgerrors.NewParseError("yaml", "ar.yaml", "root must be a mapping", nil)
		assert.Equal(t, "parse error in yaml file ar.yaml: root must be a mapping", err.Error())
	})

	t.Run("format only", func(t *testing.T) {
		err := &pkgerrors.ParseError{Format: "toml", Message: "unexpected EOF"}
		assert.Equal(t, "toml parse error: unexpected EOF", err.Error())
	})

	t.Run("is and unwrap", func(t *testing.T) {
		cause := errors.New("unexpected end of input")
		err := pkgerrors.WrapParse("json5", "incoming.json", cause)
		require.Error(t, err)
		assert.True(t, pkgerrors.IsParseError(err))
		assert.ErrorIs(t, err, cause)

		var pe *pkgerrors.ParseError
		require.ErrorAs(t, fmt.Errorf("loading: %w", err), &pe)
		assert.Equal(t, "incoming.json", pe.File)
	})
}

func TestIOError(t *testing.T) {
	cause := errors.New("permission denied")
	err := pkgerrors.NewIOError("write", "/tmp/out.json", cause)
	assert.Equal(t, "IO error during write of /tmp/out.json: permission denied", err.Error())
	assert.ErrorIs(t, err, cause)

	noPath := &pkgerrors.IOError{Operation: "read", Message: "closed"}
	assert.Equal(t, "IO error during read: closed", noPath.Error())
}

func TestWrapHelpers(t *testing.T) {
	tests := []struct {
		name string
		wrap func(error) error
	}{
		{"WrapValidation", func(err error) error { return pkgerrors.WrapValidation("base", err) }},
		{"WrapIO", func(err error) error { return pkgerrors.WrapIO("read", "x.json", err) }},
		{"WrapParse", func(err error) error { return pkgerrors.WrapParse("json5", "x.json", err) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, tc.wrap(nil))
			assert.Error(t, tc.wrap(errors.New("boom")))
		})
	}
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", pkgerrors.NewNotFoundError("key", "a.b"), pkgerrors.ErrNotFound},
		{"validation", pkgerrors.NewValidationError("f", nil, "m"), pkgerrors.ErrInvalidInput},
		{"parse", pkgerrors.NewParseError("json5", "f", "m", nil), pkgerrors.ErrParse},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.err, tc.sentinel)
			assert.ErrorIs(t, fmt.Errorf("outer: %w", tc.err), tc.sentinel)
		})
	}

	assert.True(t, pkgerrors.IsCanceled(fmt.Errorf("run: %w", pkgerrors.ErrCanceled)))
}
