package task

import (
	"fmt"
	"strconv"
	"strings"
)

// ExhaustedError is the terminal failure for one item: the attempt budget
// was spent (or the run was cancelled) without a successful extraction.
type ExhaustedError struct {
	// Index is the item's original position.
	Index int

	// Attempts is the number of extraction calls consumed.
	Attempts int

	// Last is the error from the final attempt.
	Last error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("item %d: %d attempts exhausted: %v", e.Index, e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Last
}

// RunError aggregates every item that could not be extracted in a run. It
// is only reported after all tasks have settled; Outcomes carries the full
// per-item results, successes included, ordered by position index.
type RunError struct {
	Total    int
	Failures []*ExhaustedError
	Outcomes []Outcome
}

func (e *RunError) Error() string {
	positions := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		positions[i] = strconv.Itoa(f.Index)
	}
	return fmt.Sprintf("extraction failed for %d of %d items (positions %s)",
		len(e.Failures), e.Total, strings.Join(positions, ", "))
}

// Unwrap exposes the per-item failures to errors.Is/As.
func (e *RunError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}

// FailedIndices returns the positions of all failed items, in index order.
func (e *RunError) FailedIndices() []int {
	indices := make([]int, len(e.Failures))
	for i, f := range e.Failures {
		indices[i] = f.Index
	}
	return indices
}
