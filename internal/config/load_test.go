package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing and returns a cleanup
// function restoring the previous values.
func setupEnv(t *testing.T, envVars map[string]string) func() {
	t.Helper()

	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	for name, value := range envVars {
		if value == "" {
			require.NoError(t, os.Unsetenv(name))
			continue
		}
		require.NoError(t, os.Setenv(name, value), "Failed to set environment variable %s", name)
	}

	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that Load applies the documented defaults when
// only the required key is set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"CMDPARSE_LLM_GEMINI_API_KEY": "test-api-key",
		"CMDPARSE_LOG_LEVEL":          "",
		"CMDPARSE_LOG_FORMAT":         "",
		"CMDPARSE_RUN_MAX_ATTEMPTS":   "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
	assert.Equal(t, 30, cfg.Run.ConcurrencyLimit)
	assert.Equal(t, 5, cfg.Run.MaxAttempts)
	assert.Equal(t, 2, cfg.Run.BackoffBase)
	assert.Equal(t, time.Second, cfg.Run.BackoffUnit)
	assert.Equal(t, 100*time.Millisecond, cfg.Run.PacingDelay)
	assert.Equal(t, "docs/commands.json", cfg.Run.InputPath)
	assert.Equal(t, "docs/parsed_commands.json", cfg.Run.OutputPath)
}

// TestLoadFromEnv verifies that Load reads values from environment
// variables with the CMDPARSE_ prefix.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"CMDPARSE_LLM_GEMINI_API_KEY":    "test-api-key",
		"CMDPARSE_LLM_MODEL_NAME":        "gemini-2.5-pro",
		"CMDPARSE_LOG_LEVEL":             "debug",
		"CMDPARSE_LOG_FORMAT":            "text",
		"CMDPARSE_RUN_CONCURRENCY_LIMIT": "8",
		"CMDPARSE_RUN_MAX_ATTEMPTS":      "3",
		"CMDPARSE_RUN_BACKOFF_UNIT":      "250ms",
		"CMDPARSE_RUN_PACING_DELAY":      "10ms",
		"CMDPARSE_RUN_INPUT_PATH":        "in.json",
		"CMDPARSE_RUN_OUTPUT_PATH":       "out.json",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.ModelName)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 8, cfg.Run.ConcurrencyLimit)
	assert.Equal(t, 3, cfg.Run.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Run.BackoffUnit)
	assert.Equal(t, 10*time.Millisecond, cfg.Run.PacingDelay)
	assert.Equal(t, "in.json", cfg.Run.InputPath)
	assert.Equal(t, "out.json", cfg.Run.OutputPath)
}

// TestLoadMissingAPIKey verifies that validation rejects a config without
// the extraction service API key.
func TestLoadMissingAPIKey(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"CMDPARSE_LLM_GEMINI_API_KEY": "",
	})
	defer cleanup()

	cfg, err := Load()

	require.Error(t, err, "Load() should fail without an API key")
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "validation")
}

// TestLoadInvalidValues verifies that out-of-range values fail validation.
func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "invalid log level",
			envVars: map[string]string{
				"CMDPARSE_LOG_LEVEL": "verbose",
			},
		},
		{
			name: "invalid log format",
			envVars: map[string]string{
				"CMDPARSE_LOG_FORMAT": "pretty",
			},
		},
		{
			name: "zero concurrency",
			envVars: map[string]string{
				"CMDPARSE_RUN_CONCURRENCY_LIMIT": "0",
			},
		},
		{
			name: "negative max attempts",
			envVars: map[string]string{
				"CMDPARSE_RUN_MAX_ATTEMPTS": "-1",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			envVars := map[string]string{
				"CMDPARSE_LLM_GEMINI_API_KEY": "test-api-key",
			}
			for k, v := range tc.envVars {
				envVars[k] = v
			}
			cleanup := setupEnv(t, envVars)
			defer cleanup()

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
