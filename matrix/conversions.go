// SPDX-License-Identifier: MIT

// Package matrix - converters to and from gonum dense matrices.
//
// gonum is the float64 backend of the ecosystem; these converters let callers
// cross-check exact results against mat.Det / mat.Solve, or feed measured data
// into the exact engine. Conversions always copy.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/rational"
	"github.com/katalvlaran/linalg/scalar"
)

// ToGonum copies m into a new *mat.Dense via each element's Float64.
// Returns nil for a matrix with zero rows or columns (gonum rejects empty shapes).
func ToGonum[T scalar.Scalar[T]](m *Dense[T]) *mat.Dense {
	if m == nil || m.r == 0 || m.c == 0 {
		return nil
	}
	buf := make([]float64, len(m.data))
	for k, v := range m.data {
		buf[k] = v.Float64()
	}

	return mat.NewDense(m.r, m.c, buf)
}

// FromGonum copies any gonum matrix into a Dense[T]. For rational.Rational
// each entry is approximated through FromFloat64 (bounded denominator).
// Errors: ErrInvalidDimensions for empty input, ErrOverflow for non-finite entries.
func FromGonum[T scalar.Scalar[T]](g mat.Matrix) (out *Dense[T], err error) {
	defer rational.Recover(&err)
	r, c := g.Dims()
	out, err = NewDense[T](r, c)
	if err != nil {
		return nil, err
	}
	zero := scalar.Zero[T]()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.set(i, j, zero.FromFloat64(g.At(i, j)))
		}
	}

	return out, nil
}
