// SPDX-License-Identifier: MIT

package solve

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/rational"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// Kind classifies a linear system.
type Kind int

const (
	// Unique: exactly one solution.
	Unique Kind = iota
	// Manifold: infinitely many solutions forming an affine subspace.
	Manifold
	// Inconsistent: no exact solution; a least-squares pseudo-solution is reported.
	Inconsistent
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Unique:
		return "unique"
	case Manifold:
		return "manifold"
	case Inconsistent:
		return "inconsistent"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// LinearManifold is the affine set {Shift + Σ c_i·Basis[i]}.
type LinearManifold[T scalar.Scalar[T]] struct {
	Shift *vector.Vector[T]
	Basis []*vector.Vector[T]
}

// Dim returns the dimension of the direction subspace.
func (lm *LinearManifold[T]) Dim() int { return len(lm.Basis) }

// Point returns Shift + Σ coeffs[i]·Basis[i].
// Errors: ErrDimensionMismatch when len(coeffs) != Dim().
func (lm *LinearManifold[T]) Point(coeffs ...T) (p *vector.Vector[T], err error) {
	defer rational.Recover(&err)
	if len(coeffs) != len(lm.Basis) {
		return nil, fmt.Errorf("LinearManifold.Point: %d coefficients for dimension %d: %w",
			len(coeffs), len(lm.Basis), ErrDimensionMismatch)
	}
	p = lm.Shift.Clone()
	for i, c := range coeffs {
		if p, err = p.Add(lm.Basis[i].Scale(c)); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// String renders "shift + <b1,b2,...>", e.g. "[0.5, 0, 0, 0] + <[1.5, 1, 0, 0],[-0.0625, 0, -1.375, 1]>".
func (lm *LinearManifold[T]) String() string {
	parts := make([]string, len(lm.Basis))
	for i, b := range lm.Basis {
		parts[i] = b.String()
	}

	return lm.Shift.String() + " + <" + strings.Join(parts, ",") + ">"
}

// Solution is the tagged result of Solve.
//   - Kind == Unique: X is set.
//   - Kind == Manifold: Manifold is set.
//   - Kind == Inconsistent: the pseudo-solution is in X (unique least-squares
//     solution) or in Manifold (rank-deficient A).
type Solution[T scalar.Scalar[T]] struct {
	Kind     Kind
	X        *vector.Vector[T]
	Manifold *LinearManifold[T]
}

// String renders the kind followed by the solution.
func (s *Solution[T]) String() string {
	if s.Manifold != nil {
		return s.Kind.String() + ": " + s.Manifold.String()
	}
	if s.X != nil {
		return s.Kind.String() + ": " + s.X.String()
	}

	return s.Kind.String()
}
