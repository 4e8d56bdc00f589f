// SPDX-License-Identifier: MIT

// Package matrix - row-reduction engine (Gauss–Jordan).
//
// Purpose:
//   - StepwiseForm: row-echelon form restricted to an active block of trailing
//     columns; passive columns ride along through the same row operations.
//   - IdentityForm: reduced row-echelon form with zero rows dropped.
//   - Rank and Determinant derived from the two forms above.
//
// Elimination step (pivot p at row i, target t at row j, same column):
//
//	|t| == 1   row_j ← p·row_j − t·row_i     (fraction-free, det scales by p)
//	otherwise  row_j ← row_j − (t/p)·row_i
//
// The eliminated entry is then set to exact zero and every entry of row_j is
// Normalize()d (rounding + integer snapping for floats, identity for rationals).
//
// Determinism:
//   - Row sorting is stable: rows sharing a pivot column keep their relative order.
//   - Without chain mode, passes repeat until a pass performs no elimination.
//     Each pass freezes at least one more leading row, so Rows()+1 passes suffice.
//
// Complexity quicksheet:
//   - One pass: O(r²·c); StepwiseForm: O(r³·c) worst case; IdentityForm adds O(r²·c).

package matrix

import (
	"cmp"
	"log/slog"
	"math"
	"slices"

	"github.com/katalvlaran/linalg/rational"
	"github.com/katalvlaran/linalg/scalar"
)

// ---------- operation tags ----------

const (
	opStepwiseForm = "StepwiseForm"
	opIdentityForm = "IdentityForm"
	opRank         = "Rank"
	opDeterminant  = "Determinant"
)

// reduction is the working state of one StepwiseForm run.
type reduction[T scalar.Scalar[T]] struct {
	m     *Dense[T]    // private working copy
	from  int          // first active column
	scale T            // product of fraction-free multipliers
	odd   bool         // parity of the accumulated row permutation
	log   *slog.Logger // step sink
}

// StepwiseForm returns a row-echelon form of m.
// MAIN DESCRIPTION:
//   - Stage 1 (not chain mode): stable-sort rows by the column of their first
//     nonzero entry inside the active block; rows without one sort last.
//   - Stage 2: one elimination pass, pivot rows top to bottom.
//   - Stage 3 (not chain mode): re-sort and repeat until a pass eliminates nothing.
//
// Options:
//   - WithActiveBlock(w): pivots are searched in the rightmost w columns only.
//   - WithChainPreserving(): exactly one pass, rows are never reordered.
//   - WithLogger(l): one Debug record per pass.
//
// Errors:
//   - ErrNilMatrix, ErrOverflow.
//
// Notes:
//   - m is never mutated; the result is a fresh matrix of the same shape.
func StepwiseForm[T scalar.Scalar[T]](m *Dense[T], opts ...Option) (out *Dense[T], err error) {
	defer rational.Recover(&err)
	if err = ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opStepwiseForm, err)
	}

	return stepwise(m, gatherOptions(opts...)).m, nil
}

// stepwise runs the reduction and keeps the bookkeeping Determinant needs.
func stepwise[T scalar.Scalar[T]](m *Dense[T], o Options) *reduction[T] {
	w := o.activeBlock
	if w == 0 || w > m.c {
		w = m.c
	}
	work := m.Clone()
	for k, v := range work.data {
		work.data[k] = v.Normalize()
	}
	red := &reduction[T]{m: work, from: m.c - w, scale: scalar.One[T](), log: o.logger}

	if o.chainPreserving {
		n := red.pass()
		red.log.Debug("stepwise pass", "mode", "chain", "eliminations", n, "rows", m.r, "active", w)

		return red
	}

	maxPasses := m.r + 1
	for pass := 1; ; pass++ {
		red.sortRows()
		n := red.pass()
		red.log.Debug("stepwise pass", "pass", pass, "eliminations", n, "rows", m.r, "active", w)
		if n == 0 {
			break
		}
		if pass >= maxPasses {
			red.sortRows()
			break
		}
	}

	return red
}

// leading returns the first nonzero column of row i inside the active block, or -1.
func (red *reduction[T]) leading(i int) int {
	row := red.m.row(i)
	for k := red.from; k < len(row); k++ {
		if !row[k].IsZero() {
			return k
		}
	}

	return -1
}

// sortRows stable-sorts rows ascending by leading column and records the
// permutation parity.
func (red *reduction[T]) sortRows() {
	m := red.m
	keys := make([]int, m.r)
	order := make([]int, m.r)
	for i := 0; i < m.r; i++ {
		order[i] = i
		keys[i] = red.leading(i)
		if keys[i] < 0 {
			keys[i] = math.MaxInt
		}
	}
	slices.SortStableFunc(order, func(a, b int) int { return cmp.Compare(keys[a], keys[b]) })

	if permutationOdd(order) {
		red.odd = !red.odd
	}
	buf := make([]T, len(m.data))
	for dst, src := range order {
		copy(buf[dst*m.c:(dst+1)*m.c], m.row(src))
	}
	m.data = buf
}

// pass performs one top-to-bottom elimination sweep and returns the number
// of eliminated entries.
func (red *reduction[T]) pass() int {
	m := red.m
	zero := scalar.Zero[T]()
	count := 0
	for i := 0; i < m.r; i++ {
		lead := red.leading(i)
		if lead < 0 {
			continue
		}
		pivotRow := m.row(i)
		p := pivotRow[lead]
		for j := i + 1; j < m.r; j++ {
			target := m.row(j)
			t := target[lead]
			if t.IsZero() {
				continue
			}
			if scalar.IsOne(t) {
				for k := range target {
					target[k] = p.Mul(target[k]).Sub(t.Mul(pivotRow[k])).Normalize()
				}
				red.scale = red.scale.Mul(p)
			} else {
				f := t.Quo(p)
				for k := range target {
					target[k] = target[k].Sub(f.Mul(pivotRow[k])).Normalize()
				}
			}
			target[lead] = zero
			count++
		}
	}

	return count
}

// backSubstitute clears the entries above every pivot, last pivot row first.
func (red *reduction[T]) backSubstitute() {
	m := red.m
	zero := scalar.Zero[T]()
	for i := m.r - 1; i >= 0; i-- {
		lead := red.leading(i)
		if lead < 0 {
			continue
		}
		pivotRow := m.row(i)
		p := pivotRow[lead]
		for k := 0; k < i; k++ {
			target := m.row(k)
			t := target[lead]
			if t.IsZero() {
				continue
			}
			f := t.Quo(p)
			for c := range target {
				target[c] = target[c].Sub(f.Mul(pivotRow[c])).Normalize()
			}
			target[lead] = zero
		}
	}
}

// unitLeading scales every row so its leading entry is exactly one.
func (red *reduction[T]) unitLeading() {
	m := red.m
	one := scalar.One[T]()
	for i := 0; i < m.r; i++ {
		lead := red.leading(i)
		if lead < 0 {
			continue
		}
		row := m.row(i)
		p := row[lead]
		for c := range row {
			row[c] = row[c].Quo(p).Normalize()
		}
		row[lead] = one
	}
}

// IdentityForm returns the reduced row-echelon form of m without zero rows.
// Implementation:
//   - Stage 1: StepwiseForm (same options).
//   - Stage 2: back-substitute from the last pivot row upward.
//   - Stage 3: drop zero rows, scale leading entries to 1.
//
// Behavior highlights:
//   - The result has Rank(m) rows; a zero matrix yields a 0×Cols() matrix.
//
// Errors:
//   - ErrNilMatrix, ErrOverflow.
func IdentityForm[T scalar.Scalar[T]](m *Dense[T], opts ...Option) (out *Dense[T], err error) {
	defer rational.Recover(&err)
	if err = ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opIdentityForm, err)
	}
	o := gatherOptions(opts...)
	red := stepwise(m, o)
	red.backSubstitute()
	red.m = DeleteZeroRows(red.m)
	red.unitLeading()
	o.logger.Debug("identity form", "rows", m.r, "cols", m.c, "rank", red.m.r)

	return red.m, nil
}

// Rank returns the number of rows of IdentityForm(m).
// Invariant: Rank(m) <= min(Rows(), Cols()).
func Rank[T scalar.Scalar[T]](m *Dense[T], opts ...Option) (int, error) {
	id, err := IdentityForm(m, opts...)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return id.r, nil
}

// Determinant returns det(m) for square m.
// MAIN DESCRIPTION:
//   - The product of StepwiseForm's diagonal, divided by the product of the
//     fraction-free multipliers and negated for an odd row permutation, so
//     det(A·B) == det(A)·det(B) holds exactly for rationals.
//
// Errors:
//   - ErrNonSquare, ErrNilMatrix, ErrOverflow.
//
// Complexity:
//   - Same as StepwiseForm.
func Determinant[T scalar.Scalar[T]](m *Dense[T], opts ...Option) (det T, err error) {
	defer rational.Recover(&err)
	if err = ValidateSquare(m); err != nil {
		return det, matrixErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)
	o.activeBlock, o.chainPreserving = 0, false
	red := stepwise(m, o)

	det = scalar.One[T]()
	for i := 0; i < m.r; i++ {
		det = det.Mul(red.m.at(i, i))
		if det.IsZero() {
			return scalar.Zero[T](), nil
		}
	}
	det = det.Quo(red.scale)
	if red.odd {
		det = det.Neg()
	}
	o.logger.Debug("determinant", "n", m.r, "value", det.String())

	return det.Normalize(), nil
}

// permutationOdd reports whether order (a permutation of 0..n-1) is odd.
func permutationOdd(order []int) bool {
	seen := make([]bool, len(order))
	odd := false
	for start := range order {
		if seen[start] {
			continue
		}
		length := 0
		for k := start; !seen[k]; k = order[k] {
			seen[k] = true
			length++
		}
		if length%2 == 0 {
			odd = !odd
		}
	}

	return odd
}
