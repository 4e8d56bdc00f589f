// SPDX-License-Identifier: MIT

package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/solve"
	"github.com/katalvlaran/linalg/vector"
)

func operator[T scalar.Scalar[T]](t testing.TB) *matrix.Dense[T] {
	return mustInts[T](t,
		[]int64{1, 2, 3, 4},
		[]int64{4, 3, 2, 1},
		[]int64{5, 6, 7, 8},
		[]int64{8, 7, 6, 5},
	)
}

func testKernelImage[T scalar.Scalar[T]](t *testing.T) {
	a := operator[T](t)
	wantKer := []*vector.Vector[T]{vector.FromInts[T](1, -2, 1, 0), vector.FromInts[T](2, -3, 0, 1)}
	wantIm := []*vector.Vector[T]{vector.FromInts[T](1, 4, 5, 8), vector.FromInts[T](0, -5, -4, -9)}

	ker, err := solve.FindKernelBasis(a)
	require.NoError(t, err)
	requireVecsEqual(t, wantKer, ker)
	for _, k := range ker {
		ak, err := matrix.MatVec(a, k)
		require.NoError(t, err)
		assert.True(t, ak.IsZero(), "A·%s = %s", k, ak)
	}

	im, err := solve.FindImageBasis(a)
	require.NoError(t, err)
	requireVecsEqual(t, wantIm, im)

	ker2, im2, err := solve.KernelAndImage(a)
	require.NoError(t, err)
	requireVecsEqual(t, wantKer, ker2)
	requireVecsEqual(t, wantIm, im2)
}

func TestKernelAndImage_Rational(t *testing.T) { testKernelImage[Q](t) }
func TestKernelAndImage_Float(t *testing.T)    { testKernelImage[F](t) }

func TestFindKernelBasis_Trivial(t *testing.T) {
	id, err := matrix.Identity[Q](3)
	require.NoError(t, err)
	_, err = solve.FindKernelBasis(id)
	require.ErrorIs(t, err, solve.ErrDegenerateManifold)

	ker, im, err := solve.KernelAndImage(id)
	require.NoError(t, err)
	assert.Empty(t, ker)
	assert.Len(t, im, 3)
}

func TestFindImageBasis_ZeroMatrix(t *testing.T) {
	z, err := matrix.Zeros[Q](2, 3)
	require.NoError(t, err)
	im, err := solve.FindImageBasis(z)
	require.NoError(t, err)
	assert.Empty(t, im)

	ker, err := solve.FindKernelBasis(z)
	require.NoError(t, err)
	assert.Len(t, ker, 3)
}

func TestRankNullity(t *testing.T) {
	cases := []*matrix.Dense[Q]{
		operator[Q](t),
		mustInts[Q](t, []int64{1, 2}, []int64{2, 4}),
		mustInts[Q](t, []int64{0, 1, 0}, []int64{0, 0, 1}, []int64{0, 0, 0}),
		mustInts[Q](t, []int64{2, 0, 0}, []int64{0, 3, 0}, []int64{0, 0, 5}),
	}
	for _, a := range cases {
		ker, im, err := solve.KernelAndImage(a)
		require.NoError(t, err)
		assert.Equal(t, a.Cols(), len(ker)+len(im))
		rank, err := matrix.Rank(a)
		require.NoError(t, err)
		assert.Equal(t, rank, len(im))
	}
}

func TestKernelAndImage_NonSquare(t *testing.T) {
	_, _, err := solve.KernelAndImage(mustInts[Q](t, []int64{1, 2, 3}))
	require.ErrorIs(t, err, solve.ErrNonSquare)

	_, err = solve.FindImageBasis[Q](nil)
	require.ErrorIs(t, err, solve.ErrNilMatrix)
}
