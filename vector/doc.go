// SPDX-License-Identifier: MIT

// Package vector provides Vector[T], a fixed-length ordered sequence of
// scalars used as matrix rows, solutions and basis vectors.
//
// Equality follows the element type: exact for rational.Rational, within
// scalar.Tolerance for scalar.Float.
//
// Operations that combine two vectors (Add, Sub, Dot) return
// ErrDimensionMismatch on different lengths; indexed access returns
// ErrOutOfRange instead of panicking. Every method returning a vector
// returns a fresh one; only Set mutates the receiver.
package vector
