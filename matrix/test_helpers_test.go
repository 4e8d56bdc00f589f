// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Build small deterministic fixtures over both element types.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/rational"
	"github.com/katalvlaran/linalg/scalar"
)

type (
	Q = rational.Rational
	F = scalar.Float
)

// mustInts builds a matrix from integer rows or fails the test.
func mustInts[T scalar.Scalar[T]](t testing.TB, rows ...[]int64) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromInts[T](rows)
	require.NoError(t, err)

	return m
}

// mustParse builds a rational matrix from textual entries ("1/3", "-2").
func mustParse(t testing.TB, rows ...[]string) *matrix.Dense[Q] {
	t.Helper()
	raw := make([][]Q, len(rows))
	for i, r := range rows {
		raw[i] = make([]Q, len(r))
		for j, s := range r {
			v, err := rational.Parse(s)
			require.NoError(t, err)
			raw[i][j] = v
		}
	}
	m, err := matrix.FromSlices(raw)
	require.NoError(t, err)

	return m
}

// requireMatrixEqual compares with the element type's equality and prints both on failure.
func requireMatrixEqual[T scalar.Scalar[T]](t testing.TB, want, got *matrix.Dense[T]) {
	t.Helper()
	require.NotNil(t, got)
	require.True(t, want.Equal(got), "want:\n%s\ngot:\n%s", want, got)
}

// MustAt reads (i,j) or fails the test.
func MustAt[T scalar.Scalar[T]](t testing.TB, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
