// SPDX-License-Identifier: MIT
// Package poly: sentinel error set.

package poly

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/rational"
)

var (
	// ErrComplexRoots indicates that the real roots found (with
	// multiplicity) do not add up to the degree.
	ErrComplexRoots = errors.New("poly: polynomial has complex roots")

	// ErrZeroPolynomial is returned by Roots for the zero polynomial.
	ErrZeroPolynomial = errors.New("poly: zero polynomial")

	// ErrOverflow aliases the rational overflow sentinel.
	ErrOverflow = rational.ErrOverflow
)

func polyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
