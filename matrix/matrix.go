// SPDX-License-Identifier: MIT

// Package matrix - read-only gonum view.
//
// Gonum returns a zero-copy mat.Matrix over a Dense, so gonum routines
// (mat.Det, mat.Norm, mat.Formatted, ...) can read exact matrices as float64.
// The view observes later Set calls on the underlying Dense.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/scalar"
)

// gonumView adapts *Dense[T] to mat.Matrix.
type gonumView[T scalar.Scalar[T]] struct {
	m *Dense[T]
}

// Gonum returns a float64 view of m implementing mat.Matrix.
func (m *Dense[T]) Gonum() mat.Matrix { return gonumView[T]{m: m} }

// Dims implements mat.Matrix.
func (v gonumView[T]) Dims() (r, c int) { return v.m.r, v.m.c }

// At implements mat.Matrix; out-of-range indices panic with mat.ErrIndexOutOfRange
// as gonum's own types do.
func (v gonumView[T]) At(i, j int) float64 {
	if i < 0 || i >= v.m.r || j < 0 || j >= v.m.c {
		panic(mat.ErrIndexOutOfRange)
	}

	return v.m.at(i, j).Float64()
}

// T implements mat.Matrix.
func (v gonumView[T]) T() mat.Matrix { return mat.Transpose{Matrix: v} }
