// SPDX-License-Identifier: MIT

package eigen

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/poly"
	"github.com/katalvlaran/linalg/rational"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/solve"
	"github.com/katalvlaran/linalg/vector"
)

// ---------- operation tags ----------

const (
	opCharPoly     = "CharacteristicPolynomial"
	opEigenvalues  = "Eigenvalues"
	opEigenvectors = "Eigenvectors"
	opDiagonalize  = "Diagonalize"
	opJordan       = "JordanNormalForm"
)

// Decomposition holds A = P·D·P⁻¹. For JordanNormalForm, D is the Jordan
// matrix J.
type Decomposition[T scalar.Scalar[T]] struct {
	P    *matrix.Dense[T]
	D    *matrix.Dense[T]
	PInv *matrix.Dense[T]
}

// Reconstruct returns P·D·P⁻¹.
func (d *Decomposition[T]) Reconstruct() (*matrix.Dense[T], error) {
	pd, err := matrix.Mul(d.P, d.D)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(pd, d.PInv)
}

// CharacteristicPolynomial returns det(A - tI), low-degree first.
// MAIN DESCRIPTION (Faddeev–LeVerrier):
//   - M_0 = I; for k = 1..n: M = A·M_{k-1}, c_k = -tr(M)/k, M_k = M + c_k·I.
//   - det(tI - A) = t^n + c_1·t^(n-1) + … + c_n; the result is that
//     polynomial times (-1)^n.
//
// Errors:
//   - ErrNonSquare, ErrNilMatrix, ErrOverflow.
//
// Complexity:
//   - n matrix products, O(n⁴).
func CharacteristicPolynomial[T scalar.Scalar[T]](a *matrix.Dense[T], opts ...Option) (p *poly.Polynomial[T], err error) {
	defer rational.Recover(&err)
	if err = matrix.ValidateSquare(a); err != nil {
		return nil, eigenErrorf(opCharPoly, err)
	}
	o := gatherOptions(opts...)
	n := a.Rows()
	id, _ := matrix.Identity[T](n)

	// c[k] is the coefficient of t^(n-k) in det(tI - A).
	c := make([]T, n+1)
	c[0] = scalar.One[T]()
	mk := id
	for k := 1; k <= n; k++ {
		m, err := matrix.Mul(a, mk)
		if err != nil {
			return nil, eigenErrorf(opCharPoly, err)
		}
		tr, err := matrix.Trace(m)
		if err != nil {
			return nil, eigenErrorf(opCharPoly, err)
		}
		c[k] = tr.Neg().Quo(scalar.FromInt[T](int64(k))).Normalize()
		ci, err := matrix.Scale(id, c[k])
		if err != nil {
			return nil, eigenErrorf(opCharPoly, err)
		}
		if mk, err = matrix.Add(m, ci); err != nil {
			return nil, eigenErrorf(opCharPoly, err)
		}
	}

	coeffs := make([]T, n+1)
	for k, v := range c {
		if n%2 == 1 {
			v = v.Neg()
		}
		coeffs[n-k] = v
	}
	p = poly.New(coeffs...)
	o.logger.Debug("characteristic polynomial", "n", n, "poly", p.String())

	return p, nil
}

// Eigenvalues returns the real eigenvalues of A with algebraic multiplicity,
// ordered as poly.Roots orders them (multiplicity descending, then value).
// Errors: ErrNonSquare, ErrComplexRoots, ErrOverflow.
func Eigenvalues[T scalar.Scalar[T]](a *matrix.Dense[T], opts ...Option) ([]T, error) {
	p, err := CharacteristicPolynomial(a, opts...)
	if err != nil {
		return nil, eigenErrorf(opEigenvalues, err)
	}
	roots, err := poly.Roots(p, gatherOptions(opts...).rootOptions()...)
	if err != nil {
		return nil, eigenErrorf(opEigenvalues, err)
	}

	return roots, nil
}

// Eigenvectors returns a basis of ker(A - λI).
// Errors: ErrNotEigenvalue when the kernel is trivial; ErrNonSquare.
func Eigenvectors[T scalar.Scalar[T]](a *matrix.Dense[T], lambda T, opts ...Option) ([]*vector.Vector[T], error) {
	o := gatherOptions(opts...)
	nm, err := shifted(a, lambda)
	if err != nil {
		return nil, eigenErrorf(opEigenvectors, err)
	}
	basis, err := solve.FindKernelBasis(nm, o.solveOptions()...)
	if errors.Is(err, solve.ErrDegenerateManifold) {
		return nil, eigenErrorf(opEigenvectors, fmt.Errorf("λ = %s: %w", lambda, ErrNotEigenvalue))
	}
	if err != nil {
		return nil, eigenErrorf(opEigenvectors, err)
	}

	return basis, nil
}

// Diagonalize returns A = P·D·P⁻¹ with D diagonal.
// Implementation:
//   - Stage 1: eigenvalues sorted ascending form the diagonal of D.
//   - Stage 2: for each distinct eigenvalue (ascending) its eigenvectors
//     are appended as columns of P.
//   - Stage 3: P must be n×n of full rank, else ErrNotDiagonalizable.
//
// Errors:
//   - ErrNotDiagonalizable, ErrNonSquare, ErrComplexRoots, ErrOverflow.
func Diagonalize[T scalar.Scalar[T]](a *matrix.Dense[T], opts ...Option) (dec *Decomposition[T], err error) {
	defer rational.Recover(&err)
	vals, err := Eigenvalues(a, opts...)
	if err != nil {
		return nil, eigenErrorf(opDiagonalize, err)
	}
	o := gatherOptions(opts...)
	n := a.Rows()
	slices.SortStableFunc(vals, func(x, y T) int { return x.Cmp(y) })

	d, _ := matrix.Zeros[T](n, n)
	for i, v := range vals {
		_ = d.Set(i, i, v)
	}

	var cols []*vector.Vector[T]
	for i, v := range vals {
		if i > 0 && v.Equal(vals[i-1]) {
			continue
		}
		vecs, err := Eigenvectors(a, v, opts...)
		if err != nil {
			return nil, eigenErrorf(opDiagonalize, err)
		}
		o.logger.Debug("eigenspace", "value", v.String(), "dim", len(vecs))
		cols = append(cols, vecs...)
	}
	if len(cols) != n {
		return nil, eigenErrorf(opDiagonalize, fmt.Errorf("%d eigenvectors for n = %d: %w", len(cols), n, ErrNotDiagonalizable))
	}
	p, err := matrix.FromColumns(cols...)
	if err != nil {
		return nil, eigenErrorf(opDiagonalize, err)
	}
	if rank, err := matrix.Rank(matrix.Transpose(p), o.matrixOptions()...); err != nil || rank != n {
		return nil, eigenErrorf(opDiagonalize, fmt.Errorf("rank(P) < %d: %w", n, ErrNotDiagonalizable))
	}
	pinv, err := matrix.Inverse(p, o.matrixOptions()...)
	if err != nil {
		return nil, eigenErrorf(opDiagonalize, err)
	}

	return &Decomposition[T]{P: p, D: d, PInv: pinv}, nil
}

// shifted returns A - λI.
func shifted[T scalar.Scalar[T]](a *matrix.Dense[T], lambda T) (*matrix.Dense[T], error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, err
	}
	id, _ := matrix.Identity[T](a.Rows())
	li, err := matrix.Scale(id, lambda)
	if err != nil {
		return nil, err
	}

	return matrix.Sub(a, li)
}
