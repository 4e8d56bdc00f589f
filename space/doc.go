// SPDX-License-Identifier: MIT

// Package space holds Euclidean vector-space helpers built on solve and
// matrix: orthogonal projection onto span(basis), the orthogonal component,
// the angle between a vector and a subspace, Gram–Schmidt orthogonalization
// and change of basis for a linear operator.
//
// The basis passed to Projection, OrthogonalComponent and Angle may be
// linearly dependent: the Gram system is then underdetermined and its shift
// vector is used, which yields the same projection.
package space
