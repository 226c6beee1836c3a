package task

import "sync/atomic"

// Tracker counts settled items out of a known total. It is safe for
// concurrent use and purely observational: its state never affects control
// flow or outcomes.
type Tracker struct {
	total int64
	count atomic.Int64
}

// NewTracker creates a Tracker for the given total.
func NewTracker(total int) *Tracker {
	return &Tracker{total: int64(total)}
}

// Tick records one settled item and returns the new count.
func (t *Tracker) Tick() int {
	return int(t.count.Add(1))
}

// Snapshot returns the current count and the total.
func (t *Tracker) Snapshot() (done, total int) {
	return int(t.count.Load()), int(t.total)
}
