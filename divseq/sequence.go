package divseq

import (
	"fmt"
	"math"

	"github.com/katalvlaran/textdiv/matrix"
)

// Result is a diversity sequence.
//   - Order is a permutation of 0..N-1: Order[k] is the k-th selected item.
//   - Rank is its inverse: Rank[Order[k]] == k (0-based).
type Result struct {
	Strategy Strategy
	Order    []int
	Rank     []int
}

// Prefix returns a copy of the first k selected items. k is clamped to
// [0, len(Order)].
func (r Result) Prefix(k int) []int {
	k = max(0, min(k, len(r.Order)))

	return append([]int(nil), r.Order[:k]...)
}

// Sequence computes the greedy diversity order of the items of dm.
//
// Errors:
//   - ErrUnknownStrategy for an invalid s.
//   - ErrEmptyMatrix for a nil or 0×0 matrix.
//   - ErrInvalidMatrix (wrapping the matrix sentinel) when dm is not a
//     valid distance matrix.
//
// Complexity: O(N²) time, O(N) extra memory (O(N²) for non-Dense inputs,
// which are materialized once).
func Sequence(dm matrix.Matrix, s Strategy) (Result, error) {
	if !s.Valid() {
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
	if err := matrix.ValidateNotNil(dm); err != nil {
		return Result{}, ErrEmptyMatrix
	}
	n, err := matrix.ValidateDistance(dm)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}
	if n == 0 {
		return Result{}, ErrEmptyMatrix
	}
	row := rowAccessor(dm, n)

	res := Result{
		Strategy: s,
		Order:    make([]int, 0, n),
		Rank:     make([]int, n),
	}
	selected := make([]bool, n)
	pick := func(k int) {
		res.Rank[k] = len(res.Order)
		res.Order = append(res.Order, k)
		selected[k] = true
	}

	last := seed(row, n)
	pick(last)

	// score[j] is the distance to the nearest selected item (MaxiMin) or the
	// running sum of distances to the selected items (MaxiMean). The mean's
	// denominator is shared by every candidate within a step, so comparing
	// sums selects the same arg-max without a division.
	score := make([]float64, n)
	if s == MaxiMin {
		for j := range score {
			score[j] = math.Inf(1)
		}
	}

	for len(res.Order) < n {
		lastRow := row(last)
		best, bestVal := -1, 0.0
		for j := 0; j < n; j++ {
			if selected[j] {
				continue
			}
			if s == MaxiMin {
				score[j] = min(score[j], lastRow[j])
			} else {
				score[j] += lastRow[j]
			}
			if best < 0 || score[j] > bestVal { // strict: lowest index wins ties
				best, bestVal = j, score[j]
			}
		}
		pick(best)
		last = best
	}

	return res, nil
}

// seed returns the item with the maximum row sum, lowest index on ties.
func seed(row func(int) []float64, n int) int {
	best, bestSum := 0, math.Inf(-1)
	for i := 0; i < n; i++ {
		sum := 0.0
		for _, v := range row(i) {
			sum += v
		}
		if sum > bestSum {
			best, bestSum = i, sum
		}
	}

	return best
}

// rowAccessor returns a read-only row view. *Dense rows are served without
// copying; other implementations are materialized once.
func rowAccessor(dm matrix.Matrix, n int) func(int) []float64 {
	if d, ok := dm.(*matrix.Dense); ok {
		return d.RowView
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j], _ = dm.At(i, j) // indices proven valid by ValidateDistance
		}
	}

	return func(i int) []float64 { return rows[i] }
}
