package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/tiwe0/cmdparse/internal/config"
	"github.com/tiwe0/cmdparse/internal/domain"
	"github.com/tiwe0/cmdparse/internal/extraction"
)

// Extractor implements the extraction.Extractor interface using Google's
// Gemini API. One Extract call is one JSON-mode GenerateContent round trip.
type Extractor struct {
	logger *slog.Logger
	client *genai.Client
	model  string

	// systemPrompt is the instruction describing the record shape, sent
	// with every request.
	systemPrompt string
}

var _ extraction.Extractor = (*Extractor)(nil)

// NewExtractor creates a new Extractor with the provided dependencies.
//
// Parameters:
//   - ctx: Context for client initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name, and an
//     optional prompt override path
//
// Returns:
//   - A properly initialized Extractor or an error if initialization fails
func NewExtractor(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Extractor, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", extraction.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", extraction.ErrInvalidConfig)
	}

	systemPrompt := defaultSystemPrompt
	if cfg.PromptTemplatePath != "" {
		content, err := os.ReadFile(cfg.PromptTemplatePath)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt from %s: %v",
				extraction.ErrInvalidConfig, cfg.PromptTemplatePath, err)
		}
		systemPrompt = string(content)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			extraction.ErrInvalidConfig, err)
	}

	return &Extractor{
		logger:       logger,
		client:       client,
		model:        cfg.ModelName,
		systemPrompt: systemPrompt,
	}, nil
}

// Extract parses one documentation string into a structured record.
// Any failure, from the transport up to response decoding, is reported as
// an error with no partial record; retrying is the caller's concern.
func (e *Extractor) Extract(ctx context.Context, text string) (*domain.Command, error) {
	if text == "" {
		return nil, extraction.ErrEmptyInput
	}

	e.logger.DebugContext(ctx, "calling extraction service",
		"model", e.model,
		"text_length", len(text))

	genCfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: e.systemPrompt}},
		},
	}

	resp, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(text), genCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", extraction.ErrCallFailed, err)
	}

	cmd, err := decodeResponse(resp)
	if err != nil {
		return nil, err
	}

	e.logger.DebugContext(ctx, "extraction service call succeeded",
		"command_base", cmd.CommandBase,
		"example_count", len(cmd.Examples))

	return cmd, nil
}

// decodeResponse converts a GenerateContent response into a command record.
// The response must carry at least one candidate with text content that
// parses as a JSON object; anything else is an invalid response.
func decodeResponse(resp *genai.GenerateContentResponse) (*domain.Command, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no content generated", extraction.ErrInvalidResponse)
	}

	cand := resp.Candidates[0]
	if cand.FinishReason == genai.FinishReasonSafety {
		return nil, fmt.Errorf("%w: content blocked by safety filters", extraction.ErrInvalidResponse)
	}
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: empty content in response", extraction.ErrInvalidResponse)
	}

	var b strings.Builder
	for _, part := range cand.Content.Parts {
		b.WriteString(part.Text)
	}

	cmd, err := domain.ParseCommand([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", extraction.ErrInvalidResponse, err)
	}

	cmd.Normalize()
	return cmd, nil
}
