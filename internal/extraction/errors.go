package extraction

import "errors"

// Common errors returned by extractor implementations. The retry layer
// treats every extractor error as retryable; these sentinels exist so logs
// and metrics can tell call failures apart from decode failures.
var (
	// ErrEmptyInput is returned when the documentation text is empty.
	ErrEmptyInput = errors.New("documentation text cannot be empty")

	// ErrCallFailed is returned when the remote service call itself fails
	// (network, timeout, service-side error).
	ErrCallFailed = errors.New("extraction service call failed")

	// ErrInvalidResponse is returned when the service response cannot be
	// decoded into a command record.
	ErrInvalidResponse = errors.New("invalid response from extraction service")

	// ErrInvalidConfig is returned when the extractor configuration is invalid.
	ErrInvalidConfig = errors.New("invalid extractor configuration")
)
