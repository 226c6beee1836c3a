package task

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tiwe0/cmdparse/internal/domain"
	"github.com/tiwe0/cmdparse/internal/extraction"
)

// Config holds orchestration settings for a batch run.
type Config struct {
	// ConcurrencyLimit caps concurrent extraction calls.
	ConcurrencyLimit int

	// MaxAttempts is the total attempt budget per item, initial call
	// included.
	MaxAttempts int

	// BackoffBase is the exponential base for retry delays.
	BackoffBase int

	// BackoffUnit scales the exponential delays into wall-clock time.
	BackoffUnit time.Duration

	// PacingDelay is the courtesy delay between successive task
	// submissions. It throttles submission rate only and is independent of
	// ConcurrencyLimit's cap on in-flight calls.
	PacingDelay time.Duration
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() Config {
	return Config{
		ConcurrencyLimit: 30,
		MaxAttempts:      5,
		BackoffBase:      2,
		BackoffUnit:      time.Second,
		PacingDelay:      100 * time.Millisecond,
	}
}

// Orchestrator drives a batch of extraction tasks to completion. The
// extractor and all settings are injected at construction; Run holds the
// only reference to the result collection until it returns.
type Orchestrator struct {
	extractor extraction.Extractor
	config    Config
	logger    *slog.Logger
	metrics   *Metrics
}

// New creates an Orchestrator. Non-positive config values are replaced with
// their defaults.
func New(extractor extraction.Extractor, config Config, logger *slog.Logger) *Orchestrator {
	defaults := DefaultConfig()
	if config.ConcurrencyLimit < 1 {
		logger.Warn("invalid concurrency limit specified, using default",
			"specified", config.ConcurrencyLimit,
			"default", defaults.ConcurrencyLimit)
		config.ConcurrencyLimit = defaults.ConcurrencyLimit
	}
	if config.MaxAttempts < 1 {
		logger.Warn("invalid attempt budget specified, using default",
			"specified", config.MaxAttempts,
			"default", defaults.MaxAttempts)
		config.MaxAttempts = defaults.MaxAttempts
	}
	if config.BackoffBase < 1 {
		config.BackoffBase = defaults.BackoffBase
	}
	if config.BackoffUnit <= 0 {
		config.BackoffUnit = defaults.BackoffUnit
	}

	return &Orchestrator{
		extractor: extractor,
		config:    config,
		logger:    logger,
	}
}

// SetMetrics attaches run metrics. A nil Metrics disables instrumentation.
func (o *Orchestrator) SetMetrics(m *Metrics) {
	o.metrics = m
}

// Run extracts every text and returns the records ordered by position
// index: for all i, the i-th record is derived from texts[i], regardless of
// completion order.
//
// All tasks settle before any failure is reported. Per-item errors never
// abort sibling tasks; when one or more items exhaust their attempt budget,
// Run returns a *RunError enumerating the failed positions (with the full
// per-item outcomes attached) and a nil record slice. Cancelling ctx is the
// only way to stop a run early, and tasks observe it cooperatively at each
// suspension point.
func (o *Orchestrator) Run(ctx context.Context, texts []string) ([]*domain.Command, error) {
	total := len(texts)
	logger := o.logger.With("run_id", uuid.New().String())

	if total == 0 {
		logger.Info("nothing to extract")
		return []*domain.Command{}, nil
	}

	tracker := NewTracker(total)
	rt := &retryTask{
		extractor:   o.extractor,
		limiter:     NewLimiter(o.config.ConcurrencyLimit),
		tracker:     tracker,
		metrics:     o.metrics,
		logger:      logger,
		maxAttempts: o.config.MaxAttempts,
		backoffBase: o.config.BackoffBase,
		backoffUnit: o.config.BackoffUnit,
	}

	logger.Info("starting extraction run",
		"total", total,
		"concurrency_limit", o.config.ConcurrencyLimit,
		"max_attempts", o.config.MaxAttempts)
	start := time.Now()

	// Each task writes only to its own index; the pre-sized slice needs no
	// locking.
	outcomes := make([]Outcome, total)

	g := new(errgroup.Group)
	for i, text := range texts {
		item := InputItem{Index: i, Text: text}
		g.Go(func() error {
			outcomes[item.Index] = rt.run(ctx, item)
			return nil
		})

		// Pacing throttles launches only. Once ctx is cancelled there is
		// nothing left to pace; the tasks settle on their own.
		if o.config.PacingDelay > 0 && i < total-1 && ctx.Err() == nil {
			_ = sleepCtx(ctx, o.config.PacingDelay)
		}
	}
	_ = g.Wait() // per-item failures live in outcomes

	elapsed := time.Since(start)

	var failures []*ExhaustedError
	for i := range outcomes {
		if outcomes[i].Err != nil {
			var exhausted *ExhaustedError
			if errors.As(outcomes[i].Err, &exhausted) {
				failures = append(failures, exhausted)
			}
		}
	}

	if len(failures) > 0 {
		logger.Error("extraction run failed",
			"failed", len(failures),
			"total", total,
			"elapsed", elapsed)
		return nil, &RunError{Total: total, Failures: failures, Outcomes: outcomes}
	}

	records := make([]*domain.Command, total)
	for i := range outcomes {
		records[i] = outcomes[i].Record
	}

	logger.Info("extraction run complete",
		"total", total,
		"elapsed", elapsed)
	return records, nil
}
