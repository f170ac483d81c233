package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mene/internal/logging"
)

func TestLevelFromString(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, logging.LevelFromString(in))
		})
	}
	assert.Greater(t, logging.LevelFromString("off"), slog.LevelError)
}

func TestLevelFromVerbosity(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, logging.LevelFromVerbosity(0, false))
	assert.Equal(t, slog.LevelInfo, logging.LevelFromVerbosity(1, false))
	assert.Equal(t, slog.LevelDebug, logging.LevelFromVerbosity(3, false))
	assert.Greater(t, logging.LevelFromVerbosity(3, true), slog.LevelError)
}

func TestNew_Formats(t *testing.T) {
	var text, js bytes.Buffer
	logging.New(&text, slog.LevelInfo, logging.FormatText).Info("scope done", "compounds", 9)
	logging.New(&js, slog.LevelInfo, logging.FormatJSON).Info("scope done", "compounds", 9)

	assert.Contains(t, text.String(), "compounds=9")
	assert.Contains(t, js.String(), `"compounds":9`)

	var quiet bytes.Buffer
	logging.New(&quiet, slog.LevelWarn, logging.FormatText).Info("hidden")
	assert.Empty(t, quiet.String())

	logging.Discard().Error("dropped")
}
