// Package distmat builds symmetric distance matrices over an ordered
// collection of text items and answers one-to-many queries.
//
// 🚀 What it does
//
//   - Pair: one distance between two strings.
//   - Compute: the full N×N matrix. Only the upper triangle (i < j) is
//     evaluated; each value is mirrored into (j, i) and the diagonal stays 0
//     without invoking the metric.
//   - CompareOneToMany: one score per candidate against a single query,
//     plus Nearest / Farthest to pick the top k.
//
// ⚙️ Execution
//
// Rows of the upper triangle are distributed over an errgroup bounded by
// WithWorkers. Every cell is written exactly once by the goroutine that
// owns its row, so the result is bit-identical for any worker count. The
// first failing pair cancels the remaining rows and the error is returned
// with the pair indices; no partial matrix is ever returned.
//
// When the metric implements metric.Precalculator and precalculation is
// enabled (the default), every item's token is computed once up front and
// reused for all of its pairs. Tokens live only for the duration of a call.
//
// Progress is reported through WithProgress at most about a hundred times
// per build plus the final call. The callback is serialized and never
// affects the result.
//
// Complexity:
//
//	Compute          O(N²/2) metric evaluations, O(N²) memory
//	CompareOneToMany O(N) metric evaluations
package distmat
