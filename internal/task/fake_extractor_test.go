package task

import (
	"context"
	"sync"
	"time"

	"github.com/tiwe0/cmdparse/internal/domain"
)

// fakeExtractor is a scriptable extractor for tests. The script receives
// the input text and the 1-indexed call number for that text and decides
// the outcome. The fake records per-text call counts and the
// concurrent-call high-water mark.
type fakeExtractor struct {
	script func(text string, call int) (*domain.Command, error)

	// delay is how long each call stays "in flight" before resolving.
	delay time.Duration

	mu        sync.Mutex
	calls     map[string]int
	inFlight  int
	highWater int
}

func newFakeExtractor(script func(text string, call int) (*domain.Command, error)) *fakeExtractor {
	return &fakeExtractor{
		script: script,
		calls:  make(map[string]int),
	}
}

func (f *fakeExtractor) Extract(ctx context.Context, text string) (*domain.Command, error) {
	f.mu.Lock()
	f.calls[text]++
	call := f.calls[text]
	f.inFlight++
	if f.inFlight > f.highWater {
		f.highWater = f.inFlight
	}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if f.delay > 0 {
		if err := sleepCtx(ctx, f.delay); err != nil {
			return nil, err
		}
	}

	return f.script(text, call)
}

func (f *fakeExtractor) callCount(text string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[text]
}

func (f *fakeExtractor) maxConcurrent() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.highWater
}

// record builds a minimal extracted record whose base is the input text,
// letting tests tie outputs back to inputs.
func record(text string) *domain.Command {
	return &domain.Command{CommandBase: text, Examples: []domain.Example{}}
}
