// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Hot loops (sequencers, exporters) should use Row/RowView on *Dense and
//     skip the per-cell bounds checks of At.
//   - Builders writing distinct cells from several goroutines are safe: each
//     cell maps to a distinct slice element and the slice header is never resized.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/SetSym: O(1); Clone: O(r*c); Row: O(c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"       // method tag used in error wrappers
	ctxSet    = "Set"      // method tag used in error wrappers
	ctxSetSym = "SetSym"   // method tag used in error wrappers
	ctxRow    = "Row"      // method tag used in error wrappers
	ctxFrom   = "FromRows" // ctor tag for NewDenseFromRows
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Every write goes through checkValue, so a Dense never holds NaN or ±Inf.
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows copies a rectangular [][]float64 into a new Dense.
//
// Errors:
//   - ErrInvalidDimensions if rows is empty or the first row is empty.
//   - ErrDimensionMismatch if rows are ragged.
//   - ErrNaNInf if any value is NaN/±Inf (default policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < m.r; i++ { // rows in order
		if len(rows[i]) != m.c {
			return nil, denseErrorf(ctxFrom, i, len(rows[i]), ErrDimensionMismatch)
		}
		for j = 0; j < m.c; j++ { // cols in order
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// wrapped with the calling method tag.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// checkValue applies the numeric policy to v.
func (m *Dense) checkValue(method string, row, col int, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(method, row, col, ErrNaNInf)
	}

	return nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if err = m.checkValue(ctxSet, row, col, v); err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// SetSym stores v at (i, j) and (j, i). For i == j it writes the single
// diagonal cell. Both indices are checked before anything is written, so a
// failed call leaves the matrix unchanged.
//
// Errors:
//   - ErrNonSquare if the matrix is not square.
//   - ErrOutOfRange, ErrNaNInf as for Set.
//
// Complexity: O(1).
func (m *Dense) SetSym(i, j int, v float64) error {
	if m.r != m.c {
		return denseErrorf(ctxSetSym, i, j, ErrNonSquare)
	}
	ij, err := m.indexOf(ctxSetSym, i, j)
	if err != nil {
		return err
	}
	if err = m.checkValue(ctxSetSym, i, j, v); err != nil {
		return err
	}
	m.data[ij] = v
	m.data[j*m.c+i] = v // (j,i) is in range whenever (i,j) is, the matrix is square

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RowView returns row i without copying. Callers must treat it as read-only;
// writes through the slice bypass the numeric policy.
// Panics if i is out of range (internal hot-path helper).
func (m *Dense) RowView(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// ToRows materializes the matrix as [][]float64 (deep copy).
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Equal reports whether m and other have the same shape and bit-identical
// values. It is the determinism check used by builders' tests.
// Complexity: O(r*c).
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for k := range m.data {
		if math.Float64bits(m.data[k]) != math.Float64bits(other.data[k]) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy (new buffer).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
