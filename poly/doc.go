// SPDX-License-Identifier: MIT

// Package poly provides single-variable polynomials over a scalar.Scalar
// element type and a real-root solver tuned for characteristic polynomials.
//
// Coefficients are stored low-degree first: [6, -7, 0, 1] is 6 - 7t + t^3.
//
// Roots works in two stages:
//
//	1. exact: t = 0 (from trailing zero coefficients) and the integer divisors
//	   of the lowest nonzero coefficient are evaluated in T's own arithmetic;
//	2. scan: if stage 1 did not account for every root, [-bound, bound] is
//	   walked with a fixed step (1e-4 by default) looking for exact zeros and
//	   sign changes of the float64 evaluation.
//
// Multiplicities come from counting vanishing derivatives. The result lists
// each root as many times as its multiplicity, highest multiplicity first.
// Complex roots are not supported: when the real roots found do not add up to
// the degree Roots returns ErrComplexRoots.
package poly
