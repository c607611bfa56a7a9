// Package divseq orders the items of a distance matrix so that every
// prefix of the order is a spread-out (diverse) subset.
//
// 🚀 Strategies
//
//	MaxiMin   next item maximizes its distance to the nearest selected item
//	MaxiMean  next item maximizes its mean distance to the selected items
//
// Both are the greedy farthest-point heuristic for p-dispersion; the exact
// problem is NP-hard.
//
// ⚙️ Algorithm
//
//   - Seed: the item with the largest row sum; ties go to the lowest index.
//   - Each step fuses two passes over the unselected items: the running score
//     of every item is updated against the last selected row in O(1), and the
//     arg-max (lowest index on ties) becomes the next selection.
//   - Scores are plain arrays updated in place. Total work is O(N²) and
//     memory O(N) on top of the matrix.
//
// The output is deterministic for a given matrix: no maps, no goroutines,
// fixed scan order.
//
// Example:
//
//	res, err := divseq.Sequence(dm, divseq.MaxiMin)
//	// res.Order[k] is the k-th selected item, res.Rank[i] its position.
//	subset := res.Prefix(10) // ten mutually distant items
package divseq
