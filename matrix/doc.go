// Package matrix provides the dense storage and validation used for
// pairwise distance matrices.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     numeric policy that rejects NaN/±Inf on write.
//   - Symmetric writers (SetSym) so builders fill the upper triangle once
//     and mirror it.
//   - Validators for the distance-matrix contract: square, finite,
//     non-negative, zero diagonal and symmetric within an epsilon.
//
// Triangle inequality is deliberately not checked: compression and
// token-overlap distances are not proper metrics.
//
// See example_test.go for usage patterns.
package matrix
