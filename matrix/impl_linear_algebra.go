// SPDX-License-Identifier: MIT

// Package matrix - linear algebra kernels.
//
// Purpose:
//   - Element-wise Add/Sub, Scale, Mul (i-k-j), MatVec, Transpose, Trace.
//   - Inverse on top of the reduction engine (reduction.go).
//
// Contract:
//   - Inputs are never mutated; every result is a freshly allocated *Dense.
//   - Results are Normalize()d so float noise does not accumulate across calls.
//   - Rational overflow is reported as ErrOverflow, never as a panic.
//
// Complexity quicksheet:
//   - Add/Sub/Scale: O(r*c); Mul: O(r*k*c); MatVec: O(r*c); Inverse: O(n³) passes.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/rational"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// ---------- operation tags ----------

const (
	opAdd     = "Add"
	opSub     = "Sub"
	opMul     = "Mul"
	opMatVec  = "MatVec"
	opTrace   = "Trace"
	opInverse = "Inverse"
)

// addSub computes out = a + b or a - b (sign < 0).
// Implementation:
//   - Stage 1: validate shapes.
//   - Stage 2: walk the flat buffers in lockstep.
func addSub[T scalar.Scalar[T]](tag string, a, b *Dense[T], sign int) (out *Dense[T], err error) {
	defer rational.Recover(&err)
	if err = ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out = newDenseZeroOK[T](a.r, a.c)
	for k := range a.data {
		if sign < 0 {
			out.data[k] = a.data[k].Sub(b.data[k]).Normalize()
		} else {
			out.data[k] = a.data[k].Add(b.data[k]).Normalize()
		}
	}

	return out, nil
}

// Add returns a + b. Errors: ErrNilMatrix, ErrDimensionMismatch, ErrOverflow.
func Add[T scalar.Scalar[T]](a, b *Dense[T]) (*Dense[T], error) { return addSub(opAdd, a, b, +1) }

// Sub returns a - b. Errors: ErrNilMatrix, ErrDimensionMismatch, ErrOverflow.
func Sub[T scalar.Scalar[T]](a, b *Dense[T]) (*Dense[T], error) { return addSub(opSub, a, b, -1) }

// Mul returns the matrix product a·b.
// MAIN DESCRIPTION:
//   - Classic triple loop in i-k-j order; zero a[i,k] entries are skipped,
//     which pays off on the sparse block matrices built by the eigen code.
//
// Errors:
//   - ErrDimensionMismatch when a.Cols() != b.Rows().
//   - ErrOverflow on rational overflow.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul[T scalar.Scalar[T]](a, b *Dense[T]) (out *Dense[T], err error) {
	defer rational.Recover(&err)
	if err = ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out = newDenseZeroOK[T](a.r, b.c)
	for i := 0; i < a.r; i++ {
		dst := out.row(i)
		for k := 0; k < a.c; k++ {
			aik := a.at(i, k)
			if aik.IsZero() {
				continue
			}
			brow := b.row(k)
			for j := range dst {
				dst[j] = dst[j].Add(aik.Mul(brow[j]))
			}
		}
		for j := range dst {
			dst[j] = dst[j].Normalize()
		}
	}

	return out, nil
}

// Scale returns k·m.
func Scale[T scalar.Scalar[T]](m *Dense[T], k T) (out *Dense[T], err error) {
	defer rational.Recover(&err)
	if err = ValidateNotNil(m); err != nil {
		return nil, err
	}
	out = newDenseZeroOK[T](m.r, m.c)
	for idx, v := range m.data {
		out.data[idx] = v.Mul(k).Normalize()
	}

	return out, nil
}

// MatVec returns m·x.
// Errors: ErrDimensionMismatch when x.Len() != m.Cols().
func MatVec[T scalar.Scalar[T]](m *Dense[T], x *vector.Vector[T]) (out *vector.Vector[T], err error) {
	defer rational.Recover(&err)
	if err = ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	xs := x.Slice()
	res := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		sum := scalar.Zero[T]()
		for j, v := range m.row(i) {
			sum = sum.Add(v.Mul(xs[j]))
		}
		res[i] = sum.Normalize()
	}

	return vector.FromSlice(res), nil
}

// Transpose returns mᵗ.
// Complexity: O(r*c).
func Transpose[T scalar.Scalar[T]](m *Dense[T]) *Dense[T] {
	out := newDenseZeroOK[T](m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.set(j, i, m.at(i, j))
		}
	}

	return out
}

// Trace returns Σ m[i,i]. Errors: ErrNonSquare, ErrOverflow.
func Trace[T scalar.Scalar[T]](m *Dense[T]) (tr T, err error) {
	defer rational.Recover(&err)
	tr = scalar.Zero[T]()
	if err = ValidateSquare(m); err != nil {
		return tr, matrixErrorf(opTrace, err)
	}
	for i := 0; i < m.r; i++ {
		tr = tr.Add(m.at(i, i))
	}

	return tr.Normalize(), nil
}

// Inverse returns m⁻¹ as the right block of IdentityForm([m | I]).
// Implementation:
//   - Stage 1: validate square, reject det == 0 with ErrSingular.
//   - Stage 2: reduce the augmented matrix and slice off columns [n, 2n).
//
// Errors:
//   - ErrNonSquare, ErrSingular, ErrOverflow.
//
// Complexity:
//   - Time O(n³) per elimination pass, Space O(n²).
func Inverse[T scalar.Scalar[T]](m *Dense[T], opts ...Option) (inv *Dense[T], err error) {
	defer rational.Recover(&err)
	if err = ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det, err := Determinant(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det.IsZero() {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	n := m.r
	aug, err := AddMatrix(m, identity[T](n))
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	red, err := IdentityForm(aug, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if red.r != n {
		return nil, matrixErrorf(opInverse, fmt.Errorf("rank %d < %d: %w", red.r, n, ErrSingular))
	}

	return SubMatrix(red, n, 2*n)
}
