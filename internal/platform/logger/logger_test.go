package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiwe0/cmdparse/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		want  slog.Level
		input string
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "info", input: "info", want: slog.LevelInfo},
		{name: "warn", input: "warn", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "mixed case", input: "DeBuG", want: slog.LevelDebug},
		{name: "unknown defaults to info", input: "verbose", want: slog.LevelInfo},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseLevel(tc.input))
		})
	}
}

// TestSetupJSONFormat verifies that the json format emits parseable
// structured records at the configured level.
func TestSetupJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := setup(config.Logging{Level: "warn", Format: "json"}, &buf)

	logger.Info("below threshold")
	logger.Warn("at threshold", "key", "value")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record),
		"output should be a single JSON record")
	assert.Equal(t, "at threshold", record["msg"])
	assert.Equal(t, "value", record["key"])
}

// TestSetupTextFormat verifies that the text format respects the level and
// writes something human-readable.
func TestSetupTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := setup(config.Logging{Level: "debug", Format: "text"}, &buf)

	logger.Debug("visible at debug")

	assert.Contains(t, buf.String(), "visible at debug")
}
