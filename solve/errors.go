// SPDX-License-Identifier: MIT
// Package solve: sentinel error set.
// Callers match with errors.Is; shape errors alias the matrix/vector sentinels.

package solve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

var (
	// ErrDegenerateManifold is returned when an affine manifold was expected
	// (e.g. a kernel basis) but the system has a unique, trivial solution.
	ErrDegenerateManifold = errors.New("solve: solution is not a manifold")

	// ErrFreeVariableMismatch signals an internal inconsistency: the number of
	// free columns differs from cols - rank.
	ErrFreeVariableMismatch = errors.New("solve: free variable count mismatch")

	// ErrRecursionDepth is returned when normal-equation recursion exceeds
	// the configured maximum depth.
	ErrRecursionDepth = errors.New("solve: normal-equation recursion too deep")

	// ErrNoSolution is returned by SolveMatrix when some column of B has no
	// unique solution.
	ErrNoSolution = errors.New("solve: no unique solution")
)

// Shared sentinels.
var (
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrNonSquare         = matrix.ErrNonSquare
	ErrNilMatrix         = matrix.ErrNilMatrix
	ErrOverflow          = matrix.ErrOverflow
)

// solveErrorf tags err with the public operation name.
func solveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
