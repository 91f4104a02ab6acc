package logging_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuboard/localemerge/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	original := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	buf := &bytes.Buffer{}
	logging.SetDefault(zerolog.New(buf).Level(zerolog.InfoLevel))

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")

	assert.NotContains(t, buf.String(), "debug message")
	assert.Contains(t, buf.String(), "info message")
	assert.Contains(t, buf.String(), "warning message")
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithOperation(ctx, "merge")
	ctx = logging.WithPath(ctx, "menu.title")
	ctx = logging.WithFile(ctx, "locales/base.json")

	logging.FromContext(ctx).Info().Msg("conflict recorded")

	testLogger.AssertContains(t, `"operation":"merge"`)
	testLogger.AssertContains(t, `"path":"menu.title"`)
	testLogger.AssertContains(t, `"file":"locales/base.json"`)
	testLogger.AssertCount(t, 1)
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	//nolint:staticcheck // nil context is part of the contract
	assert.Same(t, logging.Default(), logging.FromContext(nil))
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
}

func TestNewLoggerFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		config   *logging.Config
		logDebug bool
	}{
		{"info json", &logging.Config{Level: "info", Format: "json", Output: "discard"}, false},
		{"debug console", &logging.Config{Level: "debug", Format: "console", Output: "discard", NoColor: true}, true},
		{"warning alias", &logging.Config{Level: "warning", Format: "json", Output: "discard"}, false},
		{"unknown level", &logging.Config{Level: "chatty", Format: "json", Output: "discard"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prev := zerolog.GlobalLevel()
			t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

			logger := logging.NewLoggerFromConfig(tc.config)
			assert.Equal(t, tc.logDebug, logger.Debug().Enabled())
		})
	}
}

func TestNewLoggerFromConfigWritesFile(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	path := filepath.Join(t.TempDir(), "merge.log")
	logger := logging.NewLoggerFromConfig(&logging.Config{
		Level:  "info",
		Format: "json",
		Output: path,
		Fields: map[string]any{"tool": "localemerge"},
	})
	logger.Info().Msg("written")

	assert.FileExists(t, path)
}

func TestCaptureLoggingForTest(t *testing.T) {
	captured := logging.CaptureLoggingForTest(t)
	logging.Info().Str("path", "greeting").Msg("addition")

	require.True(t, captured.ContainsAll("addition", "greeting"))
	captured.Clear()
	assert.Equal(t, 0, captured.Count())
}

func TestTestHelpersRestoreDefault(t *testing.T) {
	original := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	tests := []struct {
		name    string
		replace func(t *testing.T)
	}{
		{"capture", func(t *testing.T) { logging.CaptureLoggingForTest(t) }},
		{"disable", func(t *testing.T) { logging.DisableLoggingForTest(t) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logging.SetDefault(zerolog.New(buf).Level(zerolog.InfoLevel))

			t.Run("replaced", func(t *testing.T) {
				tc.replace(t)
				logging.Info().Msg("inside")
			})

			logging.Info().Msg("after")
			assert.NotContains(t, buf.String(), "inside")
			assert.Contains(t, buf.String(), "after")
		})
	}
}
