package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log Logging   `mapstructure:"log" validate:"required"`
	LLM LLMConfig `mapstructure:"llm" validate:"required"`
	Run RunConfig `mapstructure:"run" validate:"required"`
}

// Logging contains all logging-related configuration settings.
type Logging struct {
	Level  string `mapstructure:"level"  validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// LLMConfig contains all settings for the remote extraction service.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`

	// PromptTemplatePath optionally overrides the embedded system prompt.
	PromptTemplatePath string `mapstructure:"prompt_template_path"`
}

// RunConfig contains the orchestration settings for a batch run.
type RunConfig struct {
	// ConcurrencyLimit caps how many extraction calls may be in flight at
	// once.
	ConcurrencyLimit int `mapstructure:"concurrency_limit" validate:"required,gt=0"`

	// MaxAttempts is the total attempt budget per item, initial call
	// included.
	MaxAttempts int `mapstructure:"max_attempts" validate:"required,gt=0"`

	// BackoffBase is the exponential base for retry delays: attempt k waits
	// BackoffUnit * BackoffBase^(k-2).
	BackoffBase int `mapstructure:"backoff_base" validate:"required,gte=1"`

	// BackoffUnit scales the exponential delays into wall-clock time.
	BackoffUnit time.Duration `mapstructure:"backoff_unit" validate:"required,gt=0"`

	// PacingDelay is the courtesy delay between successive task
	// submissions, independent of ConcurrencyLimit.
	PacingDelay time.Duration `mapstructure:"pacing_delay" validate:"gte=0"`

	// InputPath is the JSON array of documentation strings to process.
	InputPath string `mapstructure:"input_path" validate:"required"`

	// OutputPath is where the aggregated records are written.
	OutputPath string `mapstructure:"output_path" validate:"required"`
}
