// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/rational"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m, err := matrix.NewDense[Q](tc.rows, tc.cols)
			require.NoError(t, err)
			r, c := m.Shape()
			require.Equal(t, tc.rows, r)
			require.Equal(t, tc.cols, c)
			require.True(t, m.IsZero())
			// zero entries are canonical 0/1
			require.Equal(t, int64(1), MustAt(t, m, tc.rows-1, tc.cols-1).Den())
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense[F](dims[0], dims[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
	_, err := matrix.Identity[F](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromSlices[F](nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestAtSet_Bounds(t *testing.T) {
	m, err := matrix.Zeros[Q](2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, rational.MustNew(1, 3)))
	require.Equal(t, "1/3", MustAt(t, m, 1, 2).String())

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, rational.One), matrix.ErrOutOfRange)
}

func TestClone_Independent(t *testing.T) {
	m := mustInts[Q](t, []int64{1, 2}, []int64{3, 4})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, rational.FromInt(9)))
	require.Equal(t, "1", MustAt(t, m, 0, 0).String())
	require.False(t, m.Equal(c))
}

func TestFromSlices_RaggedRows(t *testing.T) {
	_, err := matrix.FromInts[Q]([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestString(t *testing.T) {
	m := mustParse(t, []string{"1", "-1/2"}, []string{"0", "3"})
	require.Equal(t, "[1, -1/2]\n[0, 3]\n", m.String())

	f := mustInts[F](t, []int64{1, 2})
	require.Equal(t, "[1, 2]\n", f.String())
}

func TestEqual_Tolerance(t *testing.T) {
	a, err := matrix.FromSlices([][]F{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.FromSlices([][]F{{1.0004, 2}, {3, 3.9995}})
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	c, err := matrix.FromSlices([][]F{{1, 2, 0}, {3, 4, 0}})
	require.NoError(t, err)
	require.False(t, a.Equal(c))

	var nilM *matrix.Dense[F]
	require.False(t, a.Equal(nilM))
	require.True(t, nilM.Equal(nil))
}
