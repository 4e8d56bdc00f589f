// SPDX-License-Identifier: MIT

// Package solve classifies and solves linear systems A·x = b.
//
// Solve returns a tagged *Solution:
//
//	Unique        rank([A|b]) == rank(A) == cols(A); X holds the solution.
//	Manifold      rank([A|b]) == rank(A) <  cols(A); Manifold holds
//	              shift + span(basis), one basis vector per free variable.
//	Inconsistent  rank([A|b]) != rank(A); the normal equations AᵗA·x = Aᵗb
//	              are solved instead and the least-squares pseudo-solution is
//	              returned in X or Manifold.
//
// Built on the same classification:
//
//   - FindKernelBasis / FindImageBasis / KernelAndImage for subspaces;
//   - SolveMatrix for the matrix equation A·X = B.
//
// Every function is pure: inputs are copied, never mutated.
package solve
