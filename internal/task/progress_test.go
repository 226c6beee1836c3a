package task

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTrackerConcurrentTicks verifies that the count is exact under
// concurrent ticking and that every returned count is distinct.
func TestTrackerConcurrentTicks(t *testing.T) {
	const total = 200
	tracker := NewTracker(total)

	var mu sync.Mutex
	seen := make(map[int]bool, total)

	var wg sync.WaitGroup
	for i := 0; i < total; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := tracker.Tick()
			mu.Lock()
			seen[n] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	done, totalOut := tracker.Snapshot()
	assert.Equal(t, total, done)
	assert.Equal(t, total, totalOut)
	assert.Len(t, seen, total, "every tick should return a distinct count")
	for n := 1; n <= total; n++ {
		assert.True(t, seen[n], "count %d should have been returned", n)
	}
}

func TestTrackerSnapshotBeforeTicks(t *testing.T) {
	tracker := NewTracker(7)
	done, total := tracker.Snapshot()
	assert.Equal(t, 0, done)
	assert.Equal(t, 7, total)
}
