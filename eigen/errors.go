// SPDX-License-Identifier: MIT
// Package eigen: sentinel error set.

package eigen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/poly"
)

var (
	// ErrNotDiagonalizable: some eigenvalue's geometric multiplicity is below
	// its algebraic multiplicity. Use JordanNormalForm instead.
	ErrNotDiagonalizable = errors.New("eigen: matrix is not diagonalizable")

	// ErrChainsUnstable: generalized-eigenspace layering did not converge
	// within the layer cap, or the chains found do not span the space.
	ErrChainsUnstable = errors.New("eigen: jordan chains did not stabilize")

	// ErrNotEigenvalue: A - λI is non-singular.
	ErrNotEigenvalue = errors.New("eigen: value is not an eigenvalue")
)

// Shared sentinels.
var (
	ErrNonSquare    = matrix.ErrNonSquare
	ErrNilMatrix    = matrix.ErrNilMatrix
	ErrOverflow     = matrix.ErrOverflow
	ErrComplexRoots = poly.ErrComplexRoots
)

func eigenErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
