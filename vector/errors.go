// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every message is prefixed with "vector: ..."; callers match with errors.Is.
// matrix, solve and space alias these sentinels so one errors.Is check works
// across packages.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a vector is requested with length <= 0.
	ErrInvalidLength = errors.New("vector: invalid length")

	// ErrOutOfRange indicates an index outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates operands of different lengths
	// (Add, Sub, Dot).
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")
)

// vectorErrorf tags err with the operation name and index context.
func vectorErrorf(method string, err error, args ...int) error {
	if len(args) == 0 {
		return fmt.Errorf("Vector.%s: %w", method, err)
	}

	return fmt.Errorf("Vector.%s%v: %w", method, args, err)
}
