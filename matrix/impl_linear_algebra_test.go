// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the algebra kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/rational"
	"github.com/katalvlaran/linalg/vector"
)

func TestMul(t *testing.T) {
	a := mustInts[Q](t, []int64{8, 9, 8}, []int64{2, 6, 3}, []int64{3, 0, 5})
	b := mustInts[Q](t, []int64{-2, 1, 0}, []int64{0, -3, 4}, []int64{-1, -2, -3})
	want := mustInts[Q](t,
		[]int64{-24, -35, 12},
		[]int64{-7, -22, 15},
		[]int64{-11, -7, -15},
	)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireMatrixEqual(t, want, got)

	// same product over floats
	af := mustInts[F](t, []int64{8, 9, 8}, []int64{2, 6, 3}, []int64{3, 0, 5})
	bf := mustInts[F](t, []int64{-2, 1, 0}, []int64{0, -3, 4}, []int64{-1, -2, -3})
	gotF, err := matrix.Mul(af, bf)
	require.NoError(t, err)
	require.Equal(t, want.String(), gotF.String())

	_, err = matrix.Mul(a, mustInts[Q](t, []int64{1, 2}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAddSubScale(t *testing.T) {
	a := mustInts[Q](t, []int64{1, 2}, []int64{3, 4})
	b := mustInts[Q](t, []int64{4, 3}, []int64{2, 1})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireMatrixEqual(t, mustInts[Q](t, []int64{5, 5}, []int64{5, 5}), sum)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	requireMatrixEqual(t, mustInts[Q](t, []int64{-3, -1}, []int64{1, 3}), diff)

	half, err := matrix.Scale(a, rational.MustNew(1, 2))
	require.NoError(t, err)
	require.Equal(t, "[1/2, 1]\n[3/2, 2]\n", half.String())

	_, err = matrix.Add(a, mustInts[Q](t, []int64{1, 2, 3}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTransposeTrace(t *testing.T) {
	m := mustInts[Q](t, []int64{1, 2, 3}, []int64{4, 5, 6})
	tr := matrix.Transpose(m)
	require.Equal(t, "[1, 4]\n[2, 5]\n[3, 6]\n", tr.String())

	_, err := matrix.Trace(m)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	sq := mustInts[Q](t, []int64{1, 2}, []int64{3, -7})
	s, err := matrix.Trace(sq)
	require.NoError(t, err)
	require.True(t, s.Equal(rational.FromInt(-6)))
}

func TestMatVec(t *testing.T) {
	m := mustInts[Q](t, []int64{2, -4, 9}, []int64{7, 3, -6}, []int64{7, 9, -9})
	x := vector.FromInts[Q](2, 3, 4)

	b, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	require.Equal(t, "[28, -1, 5]", b.String())

	_, err = matrix.MatVec(m, vector.FromInts[Q](1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestInverse(t *testing.T) {
	a := mustInts[Q](t, []int64{2, 5, 7}, []int64{6, 3, 4}, []int64{5, -2, -3})
	want := mustInts[Q](t,
		[]int64{1, -1, 1},
		[]int64{-38, 41, -34},
		[]int64{27, -29, 24},
	)

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	requireMatrixEqual(t, want, inv)

	id, err := matrix.Identity[Q](3)
	require.NoError(t, err)
	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	requireMatrixEqual(t, id, prod)

	// float path agrees
	af := mustInts[F](t, []int64{2, 5, 7}, []int64{6, 3, 4}, []int64{5, -2, -3})
	invF, err := matrix.Inverse(af)
	require.NoError(t, err)
	require.Equal(t, want.String(), invF.String())
}

func TestInverse_Errors(t *testing.T) {
	_, err := matrix.Inverse(mustInts[Q](t, []int64{1, 2}, []int64{2, 4}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(mustInts[Q](t, []int64{1, 2, 3}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestOverflowIsAnError(t *testing.T) {
	big, err := matrix.FromSlices([][]Q{{rational.FromInt(math.MaxInt64)}})
	require.NoError(t, err)

	_, err = matrix.Mul(big, big)
	require.ErrorIs(t, err, matrix.ErrOverflow)
	require.ErrorIs(t, err, rational.ErrOverflow)
}
