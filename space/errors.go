// SPDX-License-Identifier: MIT
// Package space: sentinel error set.

package space

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/solve"
)

var (
	// ErrEmptyBasis is returned when no spanning vectors are given.
	ErrEmptyBasis = errors.New("space: empty basis")

	// ErrZeroVector is returned by Angle for x = 0.
	ErrZeroVector = errors.New("space: zero vector")

	// ErrLinearlyDependent is returned by GramSchmidt when an input vector
	// lies in the span of the previous ones.
	ErrLinearlyDependent = errors.New("space: vectors are linearly dependent")
)

// Shared sentinels.
var (
	ErrDimensionMismatch = solve.ErrDimensionMismatch
	ErrNonSquare         = solve.ErrNonSquare
	ErrOverflow          = solve.ErrOverflow
)

func spaceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
