package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiHandler(t *testing.T) {
	var text, file bytes.Buffer
	h := NewMultiHandler(
		NewHandler(&text, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&file, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	logger := slog.New(h).With("project", "MyApp")

	assert.True(t, h.Enabled(t.Context(), slog.LevelDebug))
	assert.False(t, h.Enabled(t.Context(), LevelTrace))

	logger.Debug("resolving descriptor")
	logger.Warn("descriptor missing")

	assert.NotContains(t, text.String(), "resolving descriptor")
	assert.Contains(t, text.String(), "descriptor missing project=MyApp")

	lines := bytes.Split(bytes.TrimSpace(file.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "resolving descriptor", rec["msg"])
	assert.Equal(t, "MyApp", rec["project"])
}

func TestMultiHandler_WithGroup(t *testing.T) {
	var a, b bytes.Buffer
	logger := slog.New(NewMultiHandler(
		NewHandler(&a, nil),
		NewHandler(&b, nil),
	)).WithGroup("run")

	logger.Info("launch", "target", "net8.0-android")

	assert.Contains(t, a.String(), "run.target=net8.0-android")
	assert.Contains(t, b.String(), "run.target=net8.0-android")
}
