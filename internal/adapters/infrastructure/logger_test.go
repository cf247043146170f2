package infrastructure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/logger"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestSlogLoggerAdapter_Levels(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogLoggerAdapter(logger.NewWithWriter(&buf, logger.Options{Level: slog.LevelDebug, Format: "json"}))

	adapter.Debug("debug message", ports.F("location", "London"))
	adapter.Info("info message", ports.F("temp_c", 18.0))
	adapter.Warn("warn message", ports.F("error", fmt.Errorf("redis unreachable")))
	adapter.Error("error message")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 4)

	assert.Equal(t, "DEBUG", entries[0]["level"])
	assert.Equal(t, "London", entries[0]["location"])
	assert.Equal(t, "INFO", entries[1]["level"])
	assert.Equal(t, 18.0, entries[1]["temp_c"])
	assert.Equal(t, "WARN", entries[2]["level"])
	assert.Equal(t, "redis unreachable", entries[2]["error"])
	assert.Equal(t, "ERROR", entries[3]["level"])
	assert.Equal(t, "error message", entries[3]["msg"])
}

func TestSlogLoggerAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogLoggerAdapter(logger.NewWithWriter(&buf, logger.Options{Level: slog.LevelWarn, Format: "json"}))

	adapter.Debug("hidden")
	adapter.Info("hidden")
	adapter.Warn("shown")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
}

func TestSlogLoggerAdapter_With(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogLoggerAdapter(logger.NewWithWriter(&buf, logger.Options{Format: "json"}))

	adapter.With(ports.F("request_id", "abc-123")).Info("handled")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "abc-123", entries[0]["request_id"])
}

func TestNewSlogLoggerAdapter_NilFallsBackToDefault(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	slog.SetDefault(logger.NewWithWriter(&buf, logger.Options{Format: "json"}))

	NewSlogLoggerAdapter(nil).Info("via default")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "via default", entries[0]["msg"])
}
