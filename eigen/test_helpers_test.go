// SPDX-License-Identifier: MIT

package eigen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/eigen"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/rational"
	"github.com/katalvlaran/linalg/scalar"
)

type (
	Q = rational.Rational
	F = scalar.Float
)

func mustInts[T scalar.Scalar[T]](t testing.TB, rows ...[]int64) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromInts[T](rows)
	require.NoError(t, err)

	return m
}

// mustRationals builds a rational matrix from entries such as "1/2" or "3".
func mustRationals(t testing.TB, rows ...[]string) *matrix.Dense[Q] {
	t.Helper()
	raw := make([][]Q, len(rows))
	for i, r := range rows {
		raw[i] = make([]Q, len(r))
		for j, s := range r {
			q, err := rational.Parse(s)
			require.NoError(t, err)
			raw[i][j] = q
		}
	}
	m, err := matrix.FromSlices(raw)
	require.NoError(t, err)

	return m
}

func requireMatrixEqual[T scalar.Scalar[T]](t testing.TB, want, got *matrix.Dense[T]) {
	t.Helper()
	require.NotNil(t, got)
	require.True(t, want.Equal(got), "want:\n%s\ngot:\n%s", want, got)
}

// requireReconstructs checks A == P·D·P⁻¹ and P·P⁻¹ == I.
func requireReconstructs[T scalar.Scalar[T]](t testing.TB, a *matrix.Dense[T], dec *eigen.Decomposition[T]) {
	t.Helper()
	got, err := dec.Reconstruct()
	require.NoError(t, err)
	requireMatrixEqual(t, a, got)

	id, err := matrix.Identity[T](a.Rows())
	require.NoError(t, err)
	ppinv, err := matrix.Mul(dec.P, dec.PInv)
	require.NoError(t, err)
	requireMatrixEqual(t, id, ppinv)
}

// Fixtures shared by the eigen tests.
var (
	singularOperator = [][]int64{{4, 5, 6}, {-5, -7, -9}, {2, 3, 4}}
	symmetric366     = [][]int64{{5, -1, -1}, {-1, 5, -1}, {-1, -1, 5}}
	jordan22         = [][]int64{{2, 1}, {0, 2}}
	jordanMixed      = [][]int64{{2, 1, 0}, {0, 2, 0}, {0, 0, 3}}
	nilpotent3       = [][]int64{{0, 1, 0}, {0, 0, 1}, {0, 0, 0}}
	blockDemo        = [][]int64{{-1, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, -2, -2}, {0, 0, 1, 1}}
	rotation         = [][]int64{{0, -1}, {1, 0}}
)
