// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/textdiv/matrix"
	"github.com/stretchr/testify/require"
)

// mustRows builds a Dense from literal rows or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestValidateDistance covers every stage of the distance contract in priority order.
func TestValidateDistance(t *testing.T) {
	t.Parallel()

	var nilDense *matrix.Dense

	tests := []struct {
		name    string
		m       matrix.Matrix
		opts    []matrix.Option
		wantN   int
		wantErr error
	}{
		{"nil interface", nil, nil, 0, matrix.ErrNilMatrix},
		{"typed nil", nilDense, nil, 0, matrix.ErrNilMatrix},
		{"non-square", mustRows(t, [][]float64{{0, 1, 2}, {1, 0, 3}}), nil, 0, matrix.ErrNonSquare},
		{"negative", mustRows(t, [][]float64{{0, -1}, {-1, 0}}), nil, 0, matrix.ErrNegativeEntry},
		{"diagonal", mustRows(t, [][]float64{{0.5, 1}, {1, 0}}), nil, 0, matrix.ErrNonZeroDiagonal},
		{"asymmetric", mustRows(t, [][]float64{{0, 1}, {2, 0}}), nil, 0, matrix.ErrAsymmetry},
		{"within eps", mustRows(t, [][]float64{{0, 1}, {1 + 1e-12, 0}}), nil, 2, nil},
		{"loose eps", mustRows(t, [][]float64{{0, 1}, {1.1, 0}}), []matrix.Option{matrix.WithEpsilon(0.2)}, 2, nil},
		{"single", mustRows(t, [][]float64{{0}}), nil, 1, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			n, err := matrix.ValidateDistance(tc.m, tc.opts...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantN, n)
		})
	}
}

// rowsMatrix is a Matrix without a numeric policy, standing in for
// implementations outside this package.
type rowsMatrix [][]float64

func (r rowsMatrix) Rows() int { return len(r) }
func (r rowsMatrix) Cols() int { return len(r) }
func (r rowsMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(r) || j < 0 || j >= len(r[i]) {
		return 0, matrix.ErrOutOfRange
	}
	return r[i][j], nil
}
func (r rowsMatrix) Set(i, j int, v float64) error { r[i][j] = v; return nil }
func (r rowsMatrix) Clone() matrix.Matrix          { return r }

// TestValidateDistanceNaN feeds non-finite entries through a foreign Matrix.
func TestValidateDistanceNaN(t *testing.T) {
	_, err := matrix.ValidateDistance(rowsMatrix{{0, posInf()}, {posInf(), 0}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestWithEpsilonPanics guards the programmer-error contract.
func TestWithEpsilonPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(posInf()) })
}
