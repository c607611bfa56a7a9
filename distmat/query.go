// Package distmat - one-against-many comparison and top-k selection.
//
// CompareOneToMany evaluates one row of a distance matrix without building
// the matrix; Nearest and Farthest order that row.
package distmat

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/textdiv/metric"
	"golang.org/x/sync/errgroup"
)

// CompareOneToMany scores query against every candidate. scores[i] is the
// distance between query and candidates[i]. The query token is computed
// once when the metric supports precalculation.
//
// Contract:
//   - scores[i] equals Pair(m, query, candidates[i]); the query is always
//     the first argument.
//   - Options are the Compute options; WithProgress counts candidates.
//
// Errors: ErrNilMetric; ErrEmptyCollection for no candidates; the first
// metric error wrapped with the candidate index; ctx.Err() on cancellation.
//
// Complexity: len(candidates) metric calls (+1 Precalculate for the query).
func CompareOneToMany(ctx context.Context, m metric.Metric, query string, candidates []string, opts ...Option) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMetric
	}
	if len(candidates) == 0 {
		return nil, ErrEmptyCollection
	}
	o := gatherOptions(opts...)
	usePrecalc := o.precalc && metric.SupportsPrecalc(m)

	var (
		qTok metric.Token
		err  error
	)
	if usePrecalc {
		if qTok, err = metric.Precalculate(m, query); err != nil {
			return nil, fmt.Errorf("distmat: query: %w", err)
		}
	}

	scores := make([]float64, len(candidates))
	prog := newProgress(o.progress, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := range candidates {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var d float64
			var err error
			if usePrecalc {
				var tok metric.Token
				if tok, err = metric.Precalculate(m, candidates[i]); err == nil {
					d, err = metric.DistanceFromTokens(m, qTok, tok, query, candidates[i])
				}
			} else {
				d, err = m.Distance(query, candidates[i])
			}
			if err == nil {
				err = checkDistance(d)
			}
			if err != nil {
				return fmt.Errorf("distmat: candidate %d: %w", i, err)
			}
			scores[i] = d
			prog.add(1)

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	o.log.Debug().Str("metric", m.Name()).Int("candidates", len(candidates)).Msg("query finished")

	return scores, nil
}

// Nearest returns the indices of the k smallest scores, nearest first.
// Ties keep the lower index first. k <= 0 or k > len(scores) selects all.
func Nearest(scores []float64, k int) []int {
	return topK(scores, k, func(a, b float64) int { return cmp.Compare(a, b) })
}

// Farthest returns the indices of the k largest scores, farthest first.
// Ties keep the lower index first. k <= 0 or k > len(scores) selects all.
func Farthest(scores []float64, k int) []int {
	return topK(scores, k, func(a, b float64) int { return cmp.Compare(b, a) })
}

// topK stably sorts the indices of scores by order and keeps the first k.
// Complexity: O(N log N) time, O(N) memory.
func topK(scores []float64, k int, order func(a, b float64) int) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int { return order(scores[a], scores[b]) })
	if k <= 0 || k > len(idx) {
		k = len(idx)
	}

	return idx[:k]
}
