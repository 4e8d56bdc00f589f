// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

func TestRowColumnAccess(t *testing.T) {
	m := mustInts[Q](t, []int64{1, 2, 3}, []int64{4, 5, 6})

	row, err := m.GetRow(1)
	require.NoError(t, err)
	require.Equal(t, "[4, 5, 6]", row.String())

	col, err := m.GetColumn(2)
	require.NoError(t, err)
	require.Equal(t, "[3, 6]", col.String())

	require.NoError(t, m.SetRow(0, vector.FromInts[Q](7, 8, 9)))
	require.NoError(t, m.SetColumn(1, vector.FromInts[Q](0, 0)))
	require.Equal(t, "[7, 0, 9]\n[4, 0, 6]\n", m.String())

	_, err = m.GetRow(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.GetColumn(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetRow(0, vector.FromInts[Q](1)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.SetColumn(0, vector.FromInts[Q](1, 2, 3)), matrix.ErrDimensionMismatch)
}

func TestFromRowsColumns(t *testing.T) {
	a := vector.FromInts[Q](1, 2)
	b := vector.FromInts[Q](3, 4)

	rows, err := matrix.FromRows(a, b)
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", rows.String())

	cols, err := matrix.FromColumns(a, b)
	require.NoError(t, err)
	require.Equal(t, "[1, 3]\n[2, 4]\n", cols.String())

	_, err = matrix.FromRows(a, vector.FromInts[Q](1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAddColumnAddMatrix(t *testing.T) {
	m := mustInts[Q](t, []int64{1, 2}, []int64{3, 4})

	aug, err := matrix.AddColumn(m, vector.FromInts[Q](5, 6))
	require.NoError(t, err)
	require.Equal(t, "[1, 2, 5]\n[3, 4, 6]\n", aug.String())

	_, err = matrix.AddColumn(m, vector.FromInts[Q](5))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	id, err := matrix.Identity[Q](2)
	require.NoError(t, err)
	cat, err := matrix.AddMatrix(m, id)
	require.NoError(t, err)
	require.Equal(t, "[1, 2, 1, 0]\n[3, 4, 0, 1]\n", cat.String())

	_, err = matrix.AddMatrix(m, mustInts[Q](t, []int64{1}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// inputs untouched
	require.Equal(t, 2, m.Cols())
}

func TestDeleteColumnSubMatrix(t *testing.T) {
	m := mustInts[Q](t, []int64{1, 2, 3, 4}, []int64{5, 6, 7, 8})

	d, err := matrix.DeleteColumn(m, 1)
	require.NoError(t, err)
	require.Equal(t, "[1, 3, 4]\n[5, 7, 8]\n", d.String())

	s, err := matrix.SubMatrix(m, 2, 4)
	require.NoError(t, err)
	require.Equal(t, "[3, 4]\n[7, 8]\n", s.String())

	empty, err := matrix.SubMatrix(m, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Cols())

	_, err = matrix.SubMatrix(m, 3, 5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.DeleteColumn(m, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestBlockDiagonal(t *testing.T) {
	a := mustInts[Q](t, []int64{2, 1}, []int64{0, 2})
	b := mustInts[Q](t, []int64{5})

	bd, err := matrix.BlockDiagonal(a, b)
	require.NoError(t, err)
	want := mustInts[Q](t,
		[]int64{2, 1, 0},
		[]int64{0, 2, 0},
		[]int64{0, 0, 5},
	)
	requireMatrixEqual(t, want, bd)

	_, err = matrix.BlockDiagonal[Q]()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDeleteZeroRows(t *testing.T) {
	m := mustInts[Q](t, []int64{0, 0}, []int64{1, 2}, []int64{0, 0})
	d := matrix.DeleteZeroRows(m)
	require.Equal(t, "[1, 2]\n", d.String())

	z := matrix.DeleteZeroRows(mustInts[Q](t, []int64{0, 0}))
	require.Equal(t, 0, z.Rows())
	require.Equal(t, 2, z.Cols())
}
