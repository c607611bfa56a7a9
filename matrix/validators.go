// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for distance-matrix checks.
//  - Keep builders and sequencers minimal by delegating shape/nil/symmetry checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence
//    (NotNil → Square → Finite → NonNegative → Diagonal → Symmetry).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Assumes m is not nil.
// Errors: ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateDistance verifies the distance-matrix contract:
//   - non-nil and square,
//   - every entry finite (no NaN/±Inf) and non-negative,
//   - |a_ii| ≤ eps,
//   - |a_ij − a_ji| ≤ eps (WithEpsilon widens the tolerance).
//
// Returns n (matrix order) on success. A 0×0 matrix cannot be built with
// NewDense, but foreign implementations may report it; it yields n == 0 and
// no error, leaving the empty-input policy to the caller.
//
// Complexity: O(n²).
func ValidateDistance(m Matrix, opts ...Option) (int, error) {
	const tag = "ValidateDistance"
	if err := ValidateNotNil(m); err != nil {
		return 0, validatorErrorf(tag, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, validatorErrorf(tag, err)
	}
	o := gatherOptions(opts...)
	n := m.Rows()

	var (
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ { // rows
		for j = 0; j < n; j++ { // cols
			if aij, err = m.At(i, j); err != nil {
				return 0, validatorErrorf(tag, err)
			}
			if math.IsNaN(aij) || math.IsInf(aij, 0) {
				return 0, validatorErrorf(tag, denseErrorf(ctxAt, i, j, ErrNaNInf))
			}
			if aij < 0 {
				return 0, validatorErrorf(tag, denseErrorf(ctxAt, i, j, ErrNegativeEntry))
			}
			if i == j && aij > o.eps {
				return 0, validatorErrorf(tag, denseErrorf(ctxAt, i, j, ErrNonZeroDiagonal))
			}
		}
	}
	for i = 0; i < n; i++ { // upper triangle
		for j = i + 1; j < n; j++ { // avoid double work
			aij, _ = m.At(i, j) // indices proven valid by the scan above
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > o.eps {
				return 0, validatorErrorf(tag, denseErrorf(ctxAt, i, j, ErrAsymmetry))
			}
		}
	}

	return n, nil
}
