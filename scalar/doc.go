// SPDX-License-Identifier: MIT

// Package scalar defines the element contract shared by vectors, matrices and
// polynomials, and the floating-point element type Float.
//
// Scalar[T] is a self-referential constraint: every algorithm in this module
// is written once as func F[T Scalar[T]](...) and runs over either
//
//   - rational.Rational: exact arithmetic, Normalize is the identity;
//   - scalar.Float: float64 with the engine's noise policy.
//
// Float numeric policy:
//
//	Equal / IsZero      |a - b| <= Tolerance (1e-3)
//	Normalize           round to Precision (6) decimals, then snap to the
//	                    nearest integer when at most SnapTolerance away
//	String              4 decimals, trailing zeros trimmed ("0.5", "-1.375")
//
// Because SnapTolerance is far below 0.5 a value sitting exactly on k+0.5 is
// never snapped; it is kept as is after rounding.
package scalar
