// SPDX-License-Identifier: MIT

// Package eigen computes characteristic polynomials, eigenvalues,
// eigenvectors, diagonalizations and Jordan normal forms of square matrices.
//
// Pipeline:
//
//	CharacteristicPolynomial  Faddeev–LeVerrier, exact for rationals
//	Eigenvalues               poly.Roots of the characteristic polynomial
//	Eigenvectors              kernel basis of A - λI
//	Diagonalize               A = P·D·P⁻¹, ErrNotDiagonalizable otherwise
//	JordanNormalForm          A = P·J·P⁻¹ via generalized-eigenspace layering
//
// Jordan cells carry λ on the diagonal and 1 on the subdiagonal; the matching
// columns of P are the chain x, (A-λI)x, …, (A-λI)^(k-1)x.
//
// Only real spectra are supported: a characteristic polynomial with complex
// roots fails with ErrComplexRoots.
package eigen
