// SPDX-License-Identifier: MIT

package space

import (
	"fmt"
	"math"

	fscalar "gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/rational"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/solve"
	"github.com/katalvlaran/linalg/vector"
)

// ---------- operation tags ----------

const (
	opProjection  = "Projection"
	opOrthogonal  = "OrthogonalComponent"
	opAngle       = "Angle"
	opGramSchmidt = "GramSchmidt"
	opChangeBasis = "ChangeBasis"
)

// AnglePrecision is the number of decimals Angle rounds to.
const AnglePrecision = 4

// AngleUnit selects the unit Angle reports in.
type AngleUnit int

const (
	Degrees AngleUnit = iota // default
	Radians
)

// Projection returns the orthogonal projection of x onto span(basis).
// Implementation:
//   - Stage 1: Gram system G·s = r with G[i][j] = <b_i, b_j>, r[i] = <b_i, x>.
//   - Stage 2: Solve; a manifold (dependent basis) contributes its shift.
//   - Stage 3: y = Σ s_i·b_i.
//
// Errors:
//   - ErrEmptyBasis, ErrDimensionMismatch, ErrOverflow.
func Projection[T scalar.Scalar[T]](basis []*vector.Vector[T], x *vector.Vector[T], opts ...Option) (y *vector.Vector[T], err error) {
	defer rational.Recover(&err)
	if err = validateBasis(basis, x); err != nil {
		return nil, spaceErrorf(opProjection, err)
	}
	k := len(basis)
	gram := make([][]T, k)
	rhs := make([]T, k)
	for i, bi := range basis {
		gram[i] = make([]T, k)
		for j, bj := range basis {
			gram[i][j], _ = bi.Dot(bj)
		}
		rhs[i], _ = bi.Dot(x)
	}
	g, err := matrix.FromSlices(gram)
	if err != nil {
		return nil, spaceErrorf(opProjection, err)
	}
	sol, err := solve.Solve(g, vector.FromSlice(rhs), gatherOptions(opts...).solveOptions()...)
	if err != nil {
		return nil, spaceErrorf(opProjection, err)
	}
	coeffs := sol.X
	if coeffs == nil {
		coeffs = sol.Manifold.Shift
	}

	return combine(basis, coeffs.Slice())
}

// OrthogonalComponent returns z = x - Projection(basis, x); z is orthogonal
// to every basis vector.
func OrthogonalComponent[T scalar.Scalar[T]](basis []*vector.Vector[T], x *vector.Vector[T], opts ...Option) (z *vector.Vector[T], err error) {
	defer rational.Recover(&err)
	y, err := Projection(basis, x, opts...)
	if err != nil {
		return nil, spaceErrorf(opOrthogonal, err)
	}

	return x.Sub(y)
}

// Angle returns the angle between x and span(basis), asin(|z| / |x|) with z
// the orthogonal component, rounded to AnglePrecision decimals.
// Errors: ErrZeroVector for x = 0, plus the Projection errors.
func Angle[T scalar.Scalar[T]](basis []*vector.Vector[T], x *vector.Vector[T], unit AngleUnit, opts ...Option) (float64, error) {
	if x != nil && x.IsZero() {
		return 0, spaceErrorf(opAngle, ErrZeroVector)
	}
	z, err := OrthogonalComponent(basis, x, opts...)
	if err != nil {
		return 0, spaceErrorf(opAngle, err)
	}
	ratio := math.Min(1, z.Norm()/x.Norm())
	angle := math.Asin(ratio)
	if unit == Degrees {
		angle = angle * 180 / math.Pi
	}

	return fscalar.Round(angle, AnglePrecision), nil
}

// GramSchmidt orthogonalizes vectors without normalizing them:
// r_0 = v_0, r_i = v_i - Σ_{j<i} (<v_i, r_j> / <r_j, r_j>)·r_j.
// Integer inputs with integer projections stay integer.
//
// Errors:
//   - ErrEmptyBasis, ErrDimensionMismatch.
//   - ErrLinearlyDependent when some r_i is zero.
func GramSchmidt[T scalar.Scalar[T]](vectors []*vector.Vector[T]) (out []*vector.Vector[T], err error) {
	defer rational.Recover(&err)
	if len(vectors) == 0 {
		return nil, spaceErrorf(opGramSchmidt, ErrEmptyBasis)
	}
	for i, v := range vectors {
		if v.Len() != vectors[0].Len() {
			return nil, spaceErrorf(opGramSchmidt, fmt.Errorf("vector %d: %w", i, ErrDimensionMismatch))
		}
		r := v.Clone()
		for _, prev := range out {
			num, _ := v.Dot(prev)
			den, _ := prev.Dot(prev)
			if r, err = r.Sub(prev.Scale(num.Quo(den))); err != nil {
				return nil, spaceErrorf(opGramSchmidt, err)
			}
		}
		if r.IsZero() {
			return nil, spaceErrorf(opGramSchmidt, fmt.Errorf("vector %d: %w", i, ErrLinearlyDependent))
		}
		out = append(out, r)
	}

	return out, nil
}

// ChangeBasis returns the matrix of operator a in newBasis, given its matrix
// in oldBasis: T⁻¹·a·T, where the transition matrix T solves E·T = F (E and F
// carry the bases as columns).
//
// Errors:
//   - ErrNonSquare, ErrDimensionMismatch, solve.ErrNoSolution when the
//     bases do not span the same space, matrix.ErrSingular, ErrOverflow.
func ChangeBasis[T scalar.Scalar[T]](a *matrix.Dense[T], oldBasis, newBasis []*vector.Vector[T], opts ...Option) (out *matrix.Dense[T], err error) {
	defer rational.Recover(&err)
	if err = matrix.ValidateSquare(a); err != nil {
		return nil, spaceErrorf(opChangeBasis, err)
	}
	if len(oldBasis) != a.Rows() || len(newBasis) != a.Rows() {
		return nil, spaceErrorf(opChangeBasis, fmt.Errorf("%d and %d vectors for n = %d: %w",
			len(oldBasis), len(newBasis), a.Rows(), ErrDimensionMismatch))
	}
	e, err := matrix.FromColumns(oldBasis...)
	if err != nil {
		return nil, spaceErrorf(opChangeBasis, err)
	}
	f, err := matrix.FromColumns(newBasis...)
	if err != nil {
		return nil, spaceErrorf(opChangeBasis, err)
	}
	t, err := solve.SolveMatrix(e, f, gatherOptions(opts...).solveOptions()...)
	if err != nil {
		return nil, spaceErrorf(opChangeBasis, err)
	}
	tinv, err := matrix.Inverse(t)
	if err != nil {
		return nil, spaceErrorf(opChangeBasis, err)
	}
	ta, err := matrix.Mul(tinv, a)
	if err != nil {
		return nil, spaceErrorf(opChangeBasis, err)
	}

	return matrix.Mul(ta, t)
}

func validateBasis[T scalar.Scalar[T]](basis []*vector.Vector[T], x *vector.Vector[T]) error {
	if len(basis) == 0 {
		return ErrEmptyBasis
	}
	if x == nil {
		return vector.ErrInvalidLength
	}
	for i, b := range basis {
		if b == nil || b.Len() != x.Len() {
			return fmt.Errorf("basis vector %d: %w", i, ErrDimensionMismatch)
		}
	}

	return nil
}

// combine returns Σ coeffs[i]·vs[i].
func combine[T scalar.Scalar[T]](vs []*vector.Vector[T], coeffs []T) (*vector.Vector[T], error) {
	acc, err := vector.New[T](vs[0].Len())
	if err != nil {
		return nil, err
	}
	for i, v := range vs {
		if acc, err = acc.Add(v.Scale(coeffs[i])); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
