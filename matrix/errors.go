// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm panics on user-triggered error conditions; int64
// overflow inside rational arithmetic is recovered into ErrOverflow at every
// public entry point.

package matrix

import (
	"errors"

	"github.com/katalvlaran/linalg/rational"
	"github.com/katalvlaran/linalg/vector"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Sentinels that
// describe the same condition as a vector error are aliases of it, so a single
// errors.Is(err, matrix.ErrDimensionMismatch) matches failures raised by either
// package.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNonSquare signals that a square matrix was required but the input wasn't
	// (Determinant, Trace, Inverse, eigen operations).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when the determinant is zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// SHARED SENTINELS (aliases of lower-level packages).

// ErrDimensionMismatch indicates incompatible operand shapes: Add/Sub with
// different shapes, Mul with a.Cols != b.Rows, AddColumn/AddMatrix with a
// different row count, MatVec with a wrong vector length.
var ErrDimensionMismatch = vector.ErrDimensionMismatch

// ErrOutOfRange indicates a row, column or range index outside valid bounds.
// Public indexers (At/Set/GetRow/...) return this, never panic.
var ErrOutOfRange = vector.ErrOutOfRange

// ErrOverflow reports that exact rational arithmetic left the int64 range.
var ErrOverflow = rational.ErrOverflow
