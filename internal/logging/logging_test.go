package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Formats(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf}).
			Info("command started", "command", "dotnet build")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "command started", rec["msg"])
		assert.Equal(t, "INFO", rec["level"])
		assert.Equal(t, "dotnet build", rec["command"])
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		New(Config{Level: slog.LevelInfo, Format: FormatText, Output: &buf}).
			Info("command started", "command", "dotnet")

		assert.Contains(t, buf.String(), "INFO  command started command=dotnet")
		assert.False(t, json.Valid(buf.Bytes()))
	})

	t.Run("unknown format falls back to text", func(t *testing.T) {
		var buf bytes.Buffer
		New(Config{Level: slog.LevelInfo, Format: "xml", Output: &buf}).Info("hello")
		assert.Contains(t, buf.String(), "INFO  hello")
	})
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestDefault(t *testing.T) {
	assert.False(t, Default().Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, Default().Enabled(t.Context(), slog.LevelWarn))
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		v    int
		want slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{7, LevelTrace},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFromVerbosity(tt.v), "verbosity %d", tt.v)
	}
	assert.Less(t, LevelTrace, slog.LevelDebug)
}

func TestContext(t *testing.T) {
	logger := New(Config{Output: &bytes.Buffer{}})

	ctx := NewContext(t.Context(), logger)
	assert.Same(t, logger, FromContext(ctx))

	assert.Same(t, slog.Default(), FromContext(t.Context()))
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	assert.True(t, logger.Enabled(t.Context(), LevelTrace))
	logger.Log(t.Context(), LevelTrace, "captured\n")
}

func TestTestWriter_TrimsNewline(t *testing.T) {
	w := &testWriter{t: t}
	n, err := w.Write([]byte("line\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}
