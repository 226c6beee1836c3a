package task

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Limiter caps how many extraction calls may be in flight at once. A task
// holds exactly one permit for the duration of a single call; backoff
// sleeps and result handling happen outside the held permit so waiting
// tasks are never blocked by another task's delay.
type Limiter struct {
	sem      *semaphore.Weighted
	capacity int
}

// NewLimiter creates a Limiter with the given capacity. A capacity below
// one is raised to one.
func NewLimiter(capacity int) *Limiter {
	if capacity < 1 {
		capacity = 1
	}
	return &Limiter{
		sem:      semaphore.NewWeighted(int64(capacity)),
		capacity: capacity,
	}
}

// Acquire blocks until a permit is available or ctx is cancelled.
func (l *Limiter) Acquire(ctx context.Context) error {
	return l.sem.Acquire(ctx, 1)
}

// Release returns a permit. Callers must pair every successful Acquire
// with exactly one Release on every exit path.
func (l *Limiter) Release() {
	l.sem.Release(1)
}

// Capacity reports the fixed permit supply.
func (l *Limiter) Capacity() int {
	return l.capacity
}
