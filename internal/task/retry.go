package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/tiwe0/cmdparse/internal/domain"
	"github.com/tiwe0/cmdparse/internal/extraction"
)

// retryState is a terminal-or-attempting state in the per-item attempt
// machine. Transitions are driven only by call outcomes: attempting(k)
// moves to succeeded on a successful call, to attempting(k+1) on a failed
// call with budget remaining, and to exhausted otherwise.
type retryState int

const (
	stateAttempting retryState = iota
	stateSucceeded
	stateExhausted
)

// retryTask runs the attempt loop for single items. One instance is shared
// by all items of a run; it holds no per-item state.
type retryTask struct {
	extractor extraction.Extractor
	limiter   *Limiter
	tracker   *Tracker
	metrics   *Metrics
	logger    *slog.Logger

	maxAttempts int
	backoffBase int
	backoffUnit time.Duration
}

// run drives one item to a terminal outcome. Every extractor error is
// retryable until the attempt budget is spent; cancellation is observed at
// each suspension point (permit acquisition, the call itself, backoff) and
// stops the item cleanly. Exactly one progress tick is emitted per settled
// item, regardless of attempt count.
func (t *retryTask) run(ctx context.Context, item InputItem) Outcome {
	out := Outcome{Index: item.Index}

	state := stateAttempting
	var lastErr error
	var record *domain.Command

	for state == stateAttempting {
		out.Attempts++
		record, lastErr = t.attempt(ctx, item)

		switch {
		case lastErr == nil:
			state = stateSucceeded

		case out.Attempts >= t.maxAttempts || ctx.Err() != nil:
			state = stateExhausted

		default:
			delay := t.backoffDelay(out.Attempts + 1)
			t.logger.Warn("extraction attempt failed, backing off",
				"position", item.Index,
				"attempt", out.Attempts,
				"max_attempts", t.maxAttempts,
				"backoff", delay,
				"error", lastErr)
			if err := sleepCtx(ctx, delay); err != nil {
				lastErr = err
				state = stateExhausted
			}
		}
	}

	if state == stateSucceeded {
		out.Record = record
	} else {
		out.Err = &ExhaustedError{Index: item.Index, Attempts: out.Attempts, Last: lastErr}
	}

	t.settle(out)
	return out
}

// attempt performs one extraction call under a permit. The permit is
// acquired immediately before the call and released unconditionally right
// after it, success or failure.
func (t *retryTask) attempt(ctx context.Context, item InputItem) (*domain.Command, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := t.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer t.limiter.Release()

	t.metrics.callStarted()
	defer t.metrics.callFinished()

	record, err := t.extractor.Extract(ctx, item.Text)
	t.metrics.observeCall(err)
	return record, err
}

// backoffDelay returns the wait before attempt k (1-indexed, k >= 2):
// backoffUnit * backoffBase^(k-2).
func (t *retryTask) backoffDelay(nextAttempt int) time.Duration {
	delay := t.backoffUnit
	for i := 2; i < nextAttempt; i++ {
		delay *= time.Duration(t.backoffBase)
	}
	return delay
}

// settle records the terminal outcome: one progress tick, one item metric,
// one log line.
func (t *retryTask) settle(out Outcome) {
	t.metrics.observeItem(out.Err)
	done := t.tracker.Tick()
	_, total := t.tracker.Snapshot()

	if out.Err != nil {
		t.logger.Error("item exhausted its attempt budget",
			"position", out.Index,
			"attempts", out.Attempts,
			"done", done,
			"total", total,
			"error", out.Err)
		return
	}
	t.logger.Debug("item extracted",
		"position", out.Index,
		"attempts", out.Attempts,
		"done", done,
		"total", total)
}

// sleepCtx waits for d or until ctx is cancelled, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
