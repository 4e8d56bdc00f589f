// SPDX-License-Identifier: MIT

// Package matrix - row/column access and structural transforms.
//
// Accessors return copies (vectors) and structural transforms return new
// matrices; only SetRow/SetColumn/Set mutate the receiver.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// ---------- operation tags ----------

const (
	opGetRow        = "GetRow"
	opGetColumn     = "GetColumn"
	opSetRow        = "SetRow"
	opSetColumn     = "SetColumn"
	opAddColumn     = "AddColumn"
	opAddMatrix     = "AddMatrix"
	opDeleteColumn  = "DeleteColumn"
	opSubMatrix     = "SubMatrix"
	opBlockDiagonal = "BlockDiagonal"
)

// matrixErrorf wraps an error with the public operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// GetRow returns a copy of row i.
func (m *Dense[T]) GetRow(i int) (*vector.Vector[T], error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf(opGetRow, fmt.Errorf("row %d of %d: %w", i, m.r, ErrOutOfRange))
	}

	return vector.FromSlice(m.row(i)), nil
}

// GetColumn returns a copy of column j.
func (m *Dense[T]) GetColumn(j int) (*vector.Vector[T], error) {
	if j < 0 || j >= m.c {
		return nil, matrixErrorf(opGetColumn, fmt.Errorf("column %d of %d: %w", j, m.c, ErrOutOfRange))
	}
	col := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		col[i] = m.at(i, j)
	}

	return vector.FromSlice(col), nil
}

// SetRow overwrites row i with v in place.
// Errors: ErrOutOfRange, ErrDimensionMismatch (len(v) != Cols()).
func (m *Dense[T]) SetRow(i int, v *vector.Vector[T]) error {
	if i < 0 || i >= m.r {
		return matrixErrorf(opSetRow, fmt.Errorf("row %d of %d: %w", i, m.r, ErrOutOfRange))
	}
	if v.Len() != m.c {
		return matrixErrorf(opSetRow, fmt.Errorf("len %d, cols %d: %w", v.Len(), m.c, ErrDimensionMismatch))
	}
	copy(m.row(i), v.Slice())

	return nil
}

// SetColumn overwrites column j with v in place.
// Errors: ErrOutOfRange, ErrDimensionMismatch (len(v) != Rows()).
func (m *Dense[T]) SetColumn(j int, v *vector.Vector[T]) error {
	if j < 0 || j >= m.c {
		return matrixErrorf(opSetColumn, fmt.Errorf("column %d of %d: %w", j, m.c, ErrOutOfRange))
	}
	if v.Len() != m.r {
		return matrixErrorf(opSetColumn, fmt.Errorf("len %d, rows %d: %w", v.Len(), m.r, ErrDimensionMismatch))
	}
	vals := v.Slice()
	for i := 0; i < m.r; i++ {
		m.set(i, j, vals[i])
	}

	return nil
}

// AddColumn returns [m | v].
func AddColumn[T scalar.Scalar[T]](m *Dense[T], v *vector.Vector[T]) (*Dense[T], error) {
	if v.Len() != m.r {
		return nil, matrixErrorf(opAddColumn, fmt.Errorf("len %d, rows %d: %w", v.Len(), m.r, ErrDimensionMismatch))
	}
	vals := v.Slice()
	out := newDenseZeroOK[T](m.r, m.c+1)
	for i := 0; i < m.r; i++ {
		copy(out.row(i), m.row(i))
		out.set(i, m.c, vals[i])
	}

	return out, nil
}

// AddMatrix returns the horizontal concatenation [a | b].
// Errors: ErrDimensionMismatch when row counts differ.
func AddMatrix[T scalar.Scalar[T]](a, b *Dense[T]) (*Dense[T], error) {
	if a.r != b.r {
		return nil, matrixErrorf(opAddMatrix, fmt.Errorf("rows %d vs %d: %w", a.r, b.r, ErrDimensionMismatch))
	}
	out := newDenseZeroOK[T](a.r, a.c+b.c)
	for i := 0; i < a.r; i++ {
		dst := out.row(i)
		copy(dst, a.row(i))
		copy(dst[a.c:], b.row(i))
	}

	return out, nil
}

// DeleteColumn returns m without column j.
func DeleteColumn[T scalar.Scalar[T]](m *Dense[T], j int) (*Dense[T], error) {
	if j < 0 || j >= m.c {
		return nil, matrixErrorf(opDeleteColumn, fmt.Errorf("column %d of %d: %w", j, m.c, ErrOutOfRange))
	}
	out := newDenseZeroOK[T](m.r, m.c-1)
	for i := 0; i < m.r; i++ {
		src, dst := m.row(i), out.row(i)
		copy(dst, src[:j])
		copy(dst[j:], src[j+1:])
	}

	return out, nil
}

// SubMatrix returns the column range [start, end) of every row.
// Errors: ErrOutOfRange unless 0 <= start <= end <= Cols().
func SubMatrix[T scalar.Scalar[T]](m *Dense[T], start, end int) (*Dense[T], error) {
	if start < 0 || end < start || end > m.c {
		return nil, matrixErrorf(opSubMatrix, fmt.Errorf("[%d,%d) of %d columns: %w", start, end, m.c, ErrOutOfRange))
	}
	out := newDenseZeroOK[T](m.r, end-start)
	for i := 0; i < m.r; i++ {
		copy(out.row(i), m.row(i)[start:end])
	}

	return out, nil
}

// BlockDiagonal places the blocks along the diagonal of a zero matrix of
// size (Σrows)×(Σcols).
func BlockDiagonal[T scalar.Scalar[T]](blocks ...*Dense[T]) (*Dense[T], error) {
	if len(blocks) == 0 {
		return nil, matrixErrorf(opBlockDiagonal, ErrInvalidDimensions)
	}
	var rows, cols int
	for _, b := range blocks {
		if b == nil {
			return nil, matrixErrorf(opBlockDiagonal, ErrNilMatrix)
		}
		rows += b.r
		cols += b.c
	}
	out := newDenseZeroOK[T](rows, cols)
	var r0, c0 int
	for _, b := range blocks {
		for i := 0; i < b.r; i++ {
			copy(out.row(r0 + i)[c0:c0+b.c], b.row(i))
		}
		r0 += b.r
		c0 += b.c
	}

	return out, nil
}

// DeleteZeroRows returns m without its all-zero rows. The result may have
// zero rows.
func DeleteZeroRows[T scalar.Scalar[T]](m *Dense[T]) *Dense[T] {
	keep := make([]int, 0, m.r)
	for i := 0; i < m.r; i++ {
		if !isZeroRow(m.row(i)) {
			keep = append(keep, i)
		}
	}
	out := newDenseZeroOK[T](len(keep), m.c)
	for k, i := range keep {
		copy(out.row(k), m.row(i))
	}

	return out
}

func isZeroRow[T scalar.Scalar[T]](row []T) bool {
	for _, v := range row {
		if !v.IsZero() {
			return false
		}
	}

	return true
}
