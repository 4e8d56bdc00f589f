// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Be generic over the element type: exact rationals or tolerance-compared floats.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/scalar"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stage 1: format "Dense.<method>(row,col): %w".
// Stage 2: return wrapped error (sentinel preserved for errors.Is).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over the scalar type T.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T scalar.Scalar[T]] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0.
//   - Stage 2: allocate and fill with T's zero (the Go zero value of a
//     struct scalar is not necessarily canonical, so fill explicitly).
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Internal zero-sized cases (rank-0 reduced forms) use newDenseZeroOK.
func NewDense[T scalar.Scalar[T]](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDenseZeroOK[T](rows, cols), nil
}

// newDenseZeroOK is the internal constructor that allows rows==0 or cols==0.
// Callers guarantee non-negative dimensions.
func newDenseZeroOK[T scalar.Scalar[T]](rows, cols int) *Dense[T] {
	buf := make([]T, rows*cols)
	zero := scalar.Zero[T]()
	for k := range buf {
		buf[k] = zero
	}

	return &Dense[T]{r: rows, c: cols, data: buf}
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports rows == cols.
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange wrapped
// with the caller's method context.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (i,j).
// Errors: ErrOutOfRange (wrapped with coordinates).
// Complexity: O(1).
func (m *Dense[T]) At(i, j int) (T, error) {
	off, err := m.indexOf(ctxAt, i, j)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[off], nil
}

// Set assigns v at (i,j) in place.
// Errors: ErrOutOfRange (wrapped with coordinates).
// Complexity: O(1).
func (m *Dense[T]) Set(i, j int, v T) error {
	off, err := m.indexOf(ctxSet, i, j)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// at / set are the unchecked accessors used by kernels after validation.
func (m *Dense[T]) at(i, j int) T { return m.data[i*m.c+j] }

func (m *Dense[T]) set(i, j int, v T) { m.data[i*m.c+j] = v }

// row returns the live slice backing row i (no copy).
func (m *Dense[T]) row(i int) []T { return m.data[i*m.c : (i+1)*m.c] }

// Clone returns a deep copy with identical shape.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: buf}
}

// Slices returns the matrix as a fresh [][]T (row-major).
func (m *Dense[T]) Slices() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.row(i))
	}

	return out
}

// Equal reports equal shape and element-wise equality under T's Equal
// (exact for rationals, tolerance-based for floats). nil equals only nil.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if !m.data[k].Equal(o.data[k]) {
			return false
		}
	}

	return true
}

// IsZero reports whether every entry is zero.
func (m *Dense[T]) IsZero() bool {
	for _, v := range m.data {
		if !v.IsZero() {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line: "[a, b]\n[c, d]\n".
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.at(i, j).String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
