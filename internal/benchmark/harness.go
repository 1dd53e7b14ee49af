package benchmark

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"
)

// Observer is notified after every finished trial.
type Observer interface {
	ObserveTrial(suite string, r Result)
}

// Harness executes trials one after another and records their durations.
type Harness struct {
	now            func() time.Time
	warmup         int
	collectGarbage bool
	observer       Observer
	logger         *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithClock replaces the monotonic clock. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(h *Harness) { h.now = now }
}

// WithWarmup runs the operation n times, untimed, before each measurement.
func WithWarmup(n int) Option {
	return func(h *Harness) { h.warmup = n }
}

// WithGarbageCollection forces a GC after every trial's teardown so the
// next trial starts from a clean heap.
func WithGarbageCollection(enabled bool) Option {
	return func(h *Harness) { h.collectGarbage = enabled }
}

// WithObserver registers an observer for finished trials.
func WithObserver(o Observer) Option {
	return func(h *Harness) { h.observer = o }
}

// WithLogger sets the logger used for per-trial debug output.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// NewHarness creates a harness using time.Now as its clock.
func NewHarness(opts ...Option) *Harness {
	h := &Harness{
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes trials in order and returns a report for suite. The first
// failing trial aborts the run. ctx is only checked between trials.
func (h *Harness) Run(ctx context.Context, suite string, trials []Trial) (*Report, error) {
	results := make([]Result, 0, len(trials))
	for _, t := range trials {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run %s interrupted before %s: %w", suite, t.Name, err)
		}

		res, err := h.runTrial(t)
		if err != nil {
			return nil, fmt.Errorf("trial %s failed: %w", t.Name, err)
		}

		h.logger.Debug("trial finished",
			"suite", suite,
			"trial", res.Name,
			"iterations", res.Iterations,
			"elapsed_ms", res.Millis())
		if h.observer != nil {
			h.observer.ObserveTrial(suite, res)
		}
		results = append(results, res)
	}

	return &Report{Suite: suite, Results: results, BuildInfo: BuildInfo()}, nil
}

func (h *Harness) runTrial(t Trial) (Result, error) {
	if t.Op == nil {
		return Result{}, fmt.Errorf("no operation defined")
	}
	if t.Iterations < 0 {
		return Result{}, fmt.Errorf("negative iteration count %d", t.Iterations)
	}

	if t.Setup != nil {
		if err := t.Setup(); err != nil {
			return Result{}, fmt.Errorf("setup: %w", err)
		}
	}

	res := Result{Name: t.Name, Iterations: int64(t.Iterations)}
	if t.Iterations > 0 {
		for i := 0; i < h.warmup; i++ {
			if err := t.Op(); err != nil {
				return Result{}, fmt.Errorf("warmup: %w", err)
			}
		}

		start := h.now()
		for i := 0; i < t.Iterations; i++ {
			if err := t.Op(); err != nil {
				return Result{}, err
			}
		}
		res.Elapsed = h.now().Sub(start)
		if res.Elapsed < 0 {
			res.Elapsed = 0
		}
	}

	if t.Teardown != nil {
		if err := t.Teardown(); err != nil {
			return Result{}, fmt.Errorf("teardown: %w", err)
		}
	}
	if h.collectGarbage {
		runtime.GC()
	}
	return res, nil
}

// BuildInfo describes the toolchain and platform the binary was built for.
func BuildInfo() string {
	return fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
