package bench

import (
	"context"
	"runtime"
	"time"

	"github.com/pkg/errors"
)

// ErrIncomplete reports an invocation that visited a different number of
// elements than the case's cardinality.
var ErrIncomplete = errors.New("incomplete traversal")

// Result is the measurement of one case.
type Result struct {
	Case    Case     `json:"-"`
	Summary Summary  `json:"summary"`
	Samples []Sample `json:"samples,omitempty"`
}

type RunnerOption func(*runnerConfig)

type runnerConfig struct {
	warmup      int
	samples     int
	fence       float64
	monitor     Monitor
	keepSamples bool
}

func WithWarmup(n int) RunnerOption {
	return func(cfg *runnerConfig) {
		cfg.warmup = n
	}
}

func WithSamples(n int) RunnerOption {
	return func(cfg *runnerConfig) {
		cfg.samples = n
	}
}

// WithOutlierFence sets the Tukey k used to reject samples; zero disables rejection.
func WithOutlierFence(k float64) RunnerOption {
	return func(cfg *runnerConfig) {
		cfg.fence = k
	}
}

func WithMonitor(m Monitor) RunnerOption {
	return func(cfg *runnerConfig) {
		cfg.monitor = m
	}
}

// WithRawSamples keeps every sample in the results next to the summary.
func WithRawSamples(keep bool) RunnerOption {
	return func(cfg *runnerConfig) {
		cfg.keepSamples = keep
	}
}

// Runner measures cases sequentially on the calling goroutine.
type Runner struct {
	warmup      int
	samples     int
	fence       float64
	monitor     Monitor
	keepSamples bool
}

func NewRunner(opts ...RunnerOption) *Runner {
	cfg := &runnerConfig{
		warmup:  DefaultWarmup,
		samples: DefaultSamples,
		fence:   DefaultOutlierFence,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.warmup < 0 {
		cfg.warmup = 0
	}
	if cfg.samples < 1 {
		cfg.samples = 1
	}
	if cfg.fence < 0 {
		cfg.fence = 0
	}
	if cfg.monitor == nil {
		cfg.monitor = NoopMonitor{}
	}

	return &Runner{
		warmup:      cfg.warmup,
		samples:     cfg.samples,
		fence:       cfg.fence,
		monitor:     cfg.monitor,
		keepSamples: cfg.keepSamples,
	}
}

// NewRunnerFromConfig applies the sampling policy of cfg.
func NewRunnerFromConfig(cfg Config, opts ...RunnerOption) *Runner {
	base := []RunnerOption{
		WithWarmup(cfg.Warmup),
		WithSamples(cfg.Samples),
		WithOutlierFence(cfg.OutlierFence),
	}
	return NewRunner(append(base, opts...)...)
}

// Run measures every case in order. It stops at the first failing case and
// returns the results gathered so far.
func (r *Runner) Run(ctx context.Context, cases []Case) ([]Result, error) {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		res, err := r.Measure(ctx, c)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Measure warms c up, then records the configured number of samples.
// Cancellation is checked between invocations; an invocation in progress
// always runs to completion.
func (r *Runner) Measure(ctx context.Context, c Case) (Result, error) {
	r.monitor.OnCaseStart(c)

	for range r.warmup {
		if err := ctx.Err(); err != nil {
			return Result{Case: c}, errors.Wrapf(err, "warm up %s", c.Name())
		}
		if n := c.Invoke(); n != c.Cardinality {
			return Result{Case: c}, errors.Wrapf(ErrIncomplete, "%s: drained %d of %d elements", c.Name(), n, c.Cardinality)
		}
	}

	samples := make([]Sample, 0, r.samples)
	for i := range r.samples {
		if err := ctx.Err(); err != nil {
			return Result{Case: c}, errors.Wrapf(err, "measure %s", c.Name())
		}
		s := measureOnce(c)
		if s.Elements != c.Cardinality {
			return Result{Case: c}, errors.Wrapf(ErrIncomplete, "%s: drained %d of %d elements", c.Name(), s.Elements, c.Cardinality)
		}
		r.monitor.OnSample(c, i, s)
		samples = append(samples, s)
	}

	summary, err := Summarize(samples, r.fence)
	if err != nil {
		return Result{Case: c}, errors.Wrapf(err, "summarize %s", c.Name())
	}
	res := Result{Case: c, Summary: summary}
	if r.keepSamples {
		res.Samples = samples
	}
	r.monitor.OnCaseDone(res)
	return res, nil
}

// measureOnce isolates the allocation counters of a single invocation by
// collecting garbage first and diffing MemStats around it.
func measureOnce(c Case) Sample {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	start := time.Now()
	n := c.Invoke()
	elapsed := time.Since(start)

	runtime.ReadMemStats(&after)
	return Sample{
		Elapsed:  elapsed,
		Bytes:    after.TotalAlloc - before.TotalAlloc,
		Allocs:   after.Mallocs - before.Mallocs,
		Elements: n,
	}
}
