// Package distmat - pairwise and full-matrix distance computation.
//
// This file contains the matrix builder and its helpers:
//  1. Pair: one checked distance.
//  2. Compute: the symmetric N×N build over the upper triangle.
//  3. precalculate / distance: the per-item token stage and the per-pair
//     evaluation shared by both paths.
//
// Determinism:
//   - Every cell is written by exactly one goroutine and its value depends
//     only on (i, j), so the matrix is bit-identical for any worker count.
package distmat

import (
	"context"
	"math"
	"time"

	"github.com/katalvlaran/textdiv/matrix"
	"github.com/katalvlaran/textdiv/metric"
	"golang.org/x/sync/errgroup"
)

// Pair returns m's distance between a and b, rejecting NaN, ±Inf and
// negative results.
//
// Contract:
//   - m must be non-nil (ErrNilMetric).
//   - Metric errors are returned unchanged; an unusable value is
//     ErrInvalidDistance (computation class).
//
// Complexity: one metric call.
func Pair(m metric.Metric, a, b string) (float64, error) {
	if m == nil {
		return 0, ErrNilMetric
	}
	d, err := m.Distance(a, b)
	if err != nil {
		return 0, err
	}

	return d, checkDistance(d)
}

// Compute builds the N×N distance matrix of items under m.
//
// Behavior:
//   - N == 0 → ErrEmptyCollection; N == 1 → [[0]] without invoking m.
//   - Only i < j is evaluated; (j, i) mirrors (i, j); the diagonal is 0.
//   - The first metric error aborts the build and is returned wrapped with
//     the pair indices. ctx cancellation aborts the same way.
//
// Workers:
//   - Row i of the upper triangle is one task; at most WithWorkers tasks run
//     at once. Progress counts pairs and is reported from a single goroutine
//     at a time.
//
// Complexity: O(N²/2) metric calls, O(N²) memory.
func Compute(ctx context.Context, m metric.Metric, items []string, opts ...Option) (*matrix.Dense, error) {
	if m == nil {
		return nil, ErrNilMetric
	}
	n := len(items)
	if n == 0 {
		return nil, ErrEmptyCollection
	}
	o := gatherOptions(opts...)

	dm, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		if o.progress != nil {
			o.progress(0, 0)
		}
		return dm, nil
	}

	start := time.Now()
	usePrecalc := o.precalc && metric.SupportsPrecalc(m)
	o.log.Debug().
		Str("metric", m.Name()).
		Int("items", n).
		Int("workers", o.workers).
		Bool("precalc", usePrecalc).
		Msg("distance matrix build started")

	var tokens []metric.Token
	if usePrecalc {
		if tokens, err = precalculate(ctx, m, items, o.workers); err != nil {
			return nil, err
		}
		o.log.Debug().Dur("elapsed", time.Since(start)).Msg("precalculation finished")
	}

	total := n * (n - 1) / 2
	prog := newProgress(o.progress, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := 0; i < n-1; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			for j := i + 1; j < n; j++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				d, err := distance(m, tokens, items, i, j)
				if err != nil {
					return pairErrorf(i, j, err)
				}
				if err = dm.SetSym(i, j, d); err != nil {
					return pairErrorf(i, j, err)
				}
			}
			prog.add(n - 1 - i)

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		o.log.Debug().Err(err).Msg("distance matrix build aborted")
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	o.log.Debug().
		Int("pairs", total).
		Dur("elapsed", time.Since(start)).
		Msg("distance matrix build finished")

	return dm, nil
}

// precalculate computes one token per item in parallel. A failure on item i
// is reported as pair (i, i).
// Complexity: N Precalculate calls, O(N) tokens.
func precalculate(ctx context.Context, m metric.Metric, items []string, workers int) ([]metric.Token, error) {
	tokens := make([]metric.Token, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			tok, err := metric.Precalculate(m, items[i])
			if err != nil {
				return pairErrorf(i, i, err)
			}
			tokens[i] = tok

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return tokens, ctx.Err()
}

// distance evaluates (i, j), through the tokens when they exist, and
// applies checkDistance to the result.
func distance(m metric.Metric, tokens []metric.Token, items []string, i, j int) (float64, error) {
	var (
		d   float64
		err error
	)
	if tokens != nil {
		d, err = metric.DistanceFromTokens(m, tokens[i], tokens[j], items[i], items[j])
	} else {
		d, err = m.Distance(items[i], items[j])
	}
	if err != nil {
		return 0, err
	}

	return d, checkDistance(d)
}

// checkDistance rejects NaN, ±Inf and negative values.
func checkDistance(d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return ErrInvalidDistance
	}

	return nil
}
