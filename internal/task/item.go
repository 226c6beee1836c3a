package task

import "github.com/tiwe0/cmdparse/internal/domain"

// InputItem is one raw documentation string plus the stable 0-based
// position index assigned at submission time. The index is the sole
// ordering key for the final output; it never changes.
type InputItem struct {
	Index int
	Text  string
}

// Outcome is the terminal result for one InputItem. Exactly one of Record
// and Err is set.
type Outcome struct {
	// Index is the item's original position.
	Index int

	// Record is the extracted record on success.
	Record *domain.Command

	// Attempts is the number of extraction calls consumed, recorded for
	// observability on success and failure alike.
	Attempts int

	// Err is the terminal error after the attempt budget is spent, or after
	// a cooperative cancellation stop.
	Err error
}
