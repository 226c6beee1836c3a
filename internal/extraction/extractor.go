package extraction

import (
	"context"

	"github.com/tiwe0/cmdparse/internal/domain"
)

// Extractor defines the interface for extracting a structured command
// record from one free-text documentation string. One call is one round
// trip to the remote service: it either returns a complete record or an
// error, never a partially valid record.
type Extractor interface {
	// Extract parses the documentation text into a structured record.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - text: The raw documentation string for one command
	//
	// Returns:
	//   - The extracted record
	//   - An error if the call or the response decode fails (see errors.go)
	Extract(ctx context.Context, text string) (*domain.Command, error)
}
