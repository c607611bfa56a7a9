package distmat

import (
	"runtime"

	"github.com/rs/zerolog"
)

// ProgressFunc receives the number of finished units (pairs for Compute,
// candidates for CompareOneToMany) and the total.
type ProgressFunc func(done, total int)

// progressSteps bounds the number of intermediate progress calls.
const progressSteps = 100

// Option configures Compute and CompareOneToMany.
type Option func(*options)

type options struct {
	precalc  bool
	workers  int
	progress ProgressFunc
	log      zerolog.Logger
}

func defaultOptions() options {
	return options{
		precalc: true,
		workers: runtime.NumCPU(),
		log:     zerolog.Nop(),
	}
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithPrecalc enables or disables per-item precalculation. It has no effect
// for metrics that do not implement metric.Precalculator.
func WithPrecalc(enabled bool) Option {
	return func(o *options) { o.precalc = enabled }
}

// WithWorkers bounds the number of concurrent goroutines. n < 1 selects
// runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		o.workers = n
	}
}

// WithProgress installs a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) { o.progress = fn }
}

// WithLogger routes debug events (start, finish, timings) to l.
// The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}
