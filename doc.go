// SPDX-License-Identifier: MIT

// Package linalg is an exact linear-algebra engine: rational and tolerant
// float scalars, dense matrices with a Gauss–Jordan reduction core, linear
// system solving, polynomial roots, eigen decomposition, Jordan normal form
// and Euclidean subspace helpers.
//
// 🚀 What is inside?
//
//	Every algorithm is generic over the element type, so the same code runs
//	exactly over rational.Rational and approximately over scalar.Float:
//		• Scalars: overflow-checked int64 rationals, 1e-3 tolerant floats
//		• Matrices: row-echelon / identity form, rank, determinant, inverse
//		• Systems: unique, manifold and least-squares solutions, kernel & image
//		• Polynomials: characteristic polynomial and real roots with multiplicity
//		• Operators: eigenvalues, eigenvectors, diagonalization, Jordan form
//		• Spaces: projection, angle to a subspace, Gram–Schmidt, change of basis
//
// Packages, bottom-up:
//
//	rational/: exact p/q numbers over int64, panics on overflow, Recover helper
//	scalar/  : the Scalar[T] constraint and the tolerant Float implementation
//	vector/  : immutable-style Vector[T]
//	matrix/  : Dense[T], reduction engine, gonum interop
//	solve/   : Solve, SolveMatrix, kernel and image bases
//	poly/    : Polynomial[T] and Roots
//	eigen/   : characteristic polynomial, Diagonalize, JordanNormalForm
//	space/   : Projection, Angle, GramSchmidt, ChangeBasis
//
// Quick example (exact arithmetic):
//
//	a, _ := matrix.FromInts[rational.Rational]([][]int64{{2, 1}, {1, 1}})
//	inv, _ := matrix.Inverse(a) // [[1, -1], [-1, 2]]
//
// Errors are sentinels matched with errors.Is; rational overflow surfaces as
// ErrOverflow from every public operation. Diagnostic steps go to an optional
// *slog.Logger passed with WithLogger.
//
//	go get github.com/katalvlaran/linalg
package linalg
