// SPDX-License-Identifier: MIT

// Package matrix - public constructors.
//
// Every constructor returns a freshly owned *Dense; input slices and vectors
// are copied, never aliased.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// Zeros returns an r×c zero matrix (alias of NewDense for readability).
func Zeros[T scalar.Scalar[T]](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// Identity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions if n <= 0.
func Identity[T scalar.Scalar[T]](n int) (*Dense[T], error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return identity[T](n), nil
}

func identity[T scalar.Scalar[T]](n int) *Dense[T] {
	m := newDenseZeroOK[T](n, n)
	one := scalar.One[T]()
	for i := 0; i < n; i++ {
		m.set(i, i, one)
	}

	return m
}

// FromSlices builds a matrix from equal-length rows.
// Errors:
//   - ErrInvalidDimensions for no rows or empty rows.
//   - ErrDimensionMismatch when row lengths differ.
func FromSlices[T scalar.Scalar[T]](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	c := len(rows[0])
	m := newDenseZeroOK[T](len(rows), c)
	for i, r := range rows {
		if len(r) != c {
			return nil, fmt.Errorf("FromSlices: row %d has %d entries, want %d: %w", i, len(r), c, ErrDimensionMismatch)
		}
		copy(m.row(i), r)
	}

	return m, nil
}

// FromInts builds a matrix of integer-valued scalars; handy for literals.
func FromInts[T scalar.Scalar[T]](rows [][]int64) (*Dense[T], error) {
	conv := make([][]T, len(rows))
	for i, r := range rows {
		conv[i] = make([]T, len(r))
		for j, v := range r {
			conv[i][j] = scalar.FromInt[T](v)
		}
	}

	return FromSlices(conv)
}

// FromRows stacks equal-length vectors as rows.
func FromRows[T scalar.Scalar[T]](rows ...*vector.Vector[T]) (*Dense[T], error) {
	raw := make([][]T, len(rows))
	for i, v := range rows {
		if v == nil {
			return nil, fmt.Errorf("FromRows: vector %d is nil: %w", i, ErrInvalidDimensions)
		}
		raw[i] = v.Slice()
	}

	return FromSlices(raw)
}

// FromColumns places equal-length vectors side by side as columns.
func FromColumns[T scalar.Scalar[T]](cols ...*vector.Vector[T]) (*Dense[T], error) {
	m, err := FromRows(cols...)
	if err != nil {
		return nil, err
	}

	return Transpose(m), nil
}
