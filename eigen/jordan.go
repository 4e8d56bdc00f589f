// SPDX-License-Identifier: MIT

// Package eigen - Jordan normal form by generalized-eigenspace layering.
//
// For each distinct eigenvalue λ (N = A - λI) rows of the form
// [x | Nx | N²x | … | N^m x] are grown one block at a time. Row operations
// keep that shape, so reducing only the trailing block separates
//   - rows with N^m x = 0: x lies in the generalized eigenspace of λ;
//   - rows with N^m x != 0: the trailing parts span the invariant complement,
//     which seeds the next eigenvalue's layer.
//
// Layer growth stops when the trailing block is zero (last eigenvalue) or
// when rank(Y) == rank(Y·Nᵗ) (any other eigenvalue).
//
// The chain table then right-aligns every row's nonzero blocks, so the last
// block of each row is an eigenvector and the blocks before it are the rest
// of its chain. Chain-preserving elimination on the last block, pivot rows
// longest first, makes the eigenvectors independent; each surviving row is one
// Jordan chain.
package eigen

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/rational"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// JordanNormalForm returns A = P·J·P⁻¹.
// MAIN DESCRIPTION:
//   - Stage 1: distinct eigenvalues in Eigenvalues order.
//   - Stage 2: per eigenvalue, build the layer ([I | Nᵗ] first, then
//     [B | B·Nᵗ] with B the previous trailing block) and extract its chains.
//   - Stage 3: one cell per chain (λ on the diagonal, 1 below it), chain
//     vectors x, Nx, … as consecutive columns of P.
//
// Errors:
//   - ErrChainsUnstable when a layer does not settle within n+1 appends or
//     the chains do not add up to n vectors.
//   - ErrNonSquare, ErrComplexRoots, ErrOverflow.
func JordanNormalForm[T scalar.Scalar[T]](a *matrix.Dense[T], opts ...Option) (dec *Decomposition[T], err error) {
	defer rational.Recover(&err)
	if err = matrix.ValidateSquare(a); err != nil {
		return nil, eigenErrorf(opJordan, err)
	}
	o := gatherOptions(opts...)
	n := a.Rows()

	vals, err := Eigenvalues(a, opts...)
	if err != nil {
		return nil, eigenErrorf(opJordan, err)
	}
	var distinct []T
	for _, v := range vals {
		if !slices.ContainsFunc(distinct, v.Equal) {
			distinct = append(distinct, v)
		}
	}

	var (
		cells []*matrix.Dense[T]
		cols  []*vector.Vector[T]
		b     *matrix.Dense[T]
	)
	for i, lambda := range distinct {
		nm, err := shifted(a, lambda)
		if err != nil {
			return nil, eigenErrorf(opJordan, err)
		}
		layer, err := growLayer(b, matrix.Transpose(nm), i == len(distinct)-1, o)
		if err != nil {
			return nil, eigenErrorf(opJordan, fmt.Errorf("λ = %s: %w", lambda, err))
		}
		tbl, next, err := newChainTable(layer, n)
		if err != nil {
			return nil, eigenErrorf(opJordan, err)
		}
		b = next
		chains, err := tbl.settle(o)
		if err != nil {
			return nil, eigenErrorf(opJordan, fmt.Errorf("λ = %s: %w", lambda, err))
		}
		o.logger.Debug("jordan eigenvalue", "value", lambda.String(), "layers", layer.Cols()/n, "chains", len(chains))
		for _, ch := range chains {
			cells = append(cells, jordanCell(len(ch), lambda))
			cols = append(cols, ch...)
		}
	}
	if len(cols) != n {
		return nil, eigenErrorf(opJordan, fmt.Errorf("%d chain vectors for n = %d: %w", len(cols), n, ErrChainsUnstable))
	}

	p, err := matrix.FromColumns(cols...)
	if err != nil {
		return nil, eigenErrorf(opJordan, err)
	}
	j, err := matrix.BlockDiagonal(cells...)
	if err != nil {
		return nil, eigenErrorf(opJordan, err)
	}
	pinv, err := matrix.Inverse(p, o.matrixOptions()...)
	if err != nil {
		return nil, eigenErrorf(opJordan, fmt.Errorf("%w: %w", ErrChainsUnstable, err))
	}

	return &Decomposition[T]{P: p, D: j, PInv: pinv}, nil
}

// growLayer builds and reduces the layer of one eigenvalue.
// b == nil starts from [I | Nᵗ]; otherwise from [B | B·Nᵗ].
func growLayer[T scalar.Scalar[T]](b, nt *matrix.Dense[T], last bool, o Options) (*matrix.Dense[T], error) {
	n := nt.Rows()
	start := b
	if start == nil {
		start, _ = matrix.Identity[T](n)
	}
	next, err := matrix.Mul(start, nt)
	if err != nil {
		return nil, err
	}
	layer, err := matrix.AddMatrix(start, next)
	if err != nil {
		return nil, err
	}
	reduceOpts := o.matrixOptions(matrix.WithActiveBlock(n))

	for appends := 0; ; appends++ {
		if layer, err = matrix.StepwiseForm(layer, reduceOpts...); err != nil {
			return nil, err
		}
		y, _ := matrix.SubMatrix(layer, layer.Cols()-n, layer.Cols())
		yn, err := matrix.Mul(y, nt)
		if err != nil {
			return nil, err
		}
		if last {
			o.logger.Debug("jordan layer", "blocks", layer.Cols()/n, "zero", y.IsZero())
			if y.IsZero() {
				return layer, nil
			}
		} else {
			ry, err := matrix.Rank(y, o.matrixOptions()...)
			if err != nil {
				return nil, err
			}
			ryn, err := matrix.Rank(yn, o.matrixOptions()...)
			if err != nil {
				return nil, err
			}
			o.logger.Debug("jordan layer", "blocks", layer.Cols()/n, "rank", ry, "next_rank", ryn)
			if ry == ryn {
				return layer, nil
			}
		}
		if appends >= n+1 {
			return nil, fmt.Errorf("%d appends: %w", appends, ErrChainsUnstable)
		}
		if layer, err = matrix.AddMatrix(layer, yn); err != nil {
			return nil, err
		}
	}
}

// chainTable holds candidate chains, one per row, right-aligned in blocks of
// n coordinates. Blocks left of a row's chain are zero placeholders.
type chainTable[T scalar.Scalar[T]] struct {
	n, width int
	rows     [][]T
	lens     []int
}

// newChainTable collects the passive part of every layer row whose trailing
// block is zero and returns the trailing block as the next eigenvalue's seed.
func newChainTable[T scalar.Scalar[T]](layer *matrix.Dense[T], n int) (*chainTable[T], *matrix.Dense[T], error) {
	passiveCols := layer.Cols() - n
	trailing, err := matrix.SubMatrix(layer, passiveCols, layer.Cols())
	if err != nil {
		return nil, nil, err
	}
	tbl := &chainTable[T]{n: n, width: passiveCols / n}
	for i := 0; i < layer.Rows(); i++ {
		y, _ := trailing.GetRow(i)
		if !y.IsZero() {
			continue
		}
		row, _ := layer.GetRow(i)
		passive, _ := row.Segment(0, passiveCols)
		tbl.push(passive.Slice())
	}

	return tbl, trailing, nil
}

func (t *chainTable[T]) block(row []T, k int) []T { return row[k*t.n : (k+1)*t.n] }

func (t *chainTable[T]) isZeroBlock(b []T) bool {
	for _, v := range b {
		if !v.IsZero() {
			return false
		}
	}

	return true
}

// push right-aligns the nonzero blocks of row and appends it; all-zero rows
// are dropped.
func (t *chainTable[T]) push(row []T) {
	var blocks [][]T
	for k := 0; k < t.width; k++ {
		if b := t.block(row, k); !t.isZeroBlock(b) {
			blocks = append(blocks, b)
		}
	}
	if len(blocks) == 0 {
		return
	}
	out := make([]T, len(row))
	zero := scalar.Zero[T]()
	for k := range out {
		out[k] = zero
	}
	offset := t.width - len(blocks)
	for k, b := range blocks {
		copy(t.block(out, offset+k), b)
	}
	t.rows = append(t.rows, out)
	t.lens = append(t.lens, len(blocks))
}

// settle repeats sort, chain-preserving elimination on the last block and
// re-alignment until a pass changes nothing, then returns the chains.
func (t *chainTable[T]) settle(o Options) ([][]*vector.Vector[T], error) {
	maxRounds := len(t.rows)*t.width + 1
	reduceOpts := o.matrixOptions(matrix.WithChainPreserving(), matrix.WithActiveBlock(t.n))
	for round := 0; len(t.rows) > 0; round++ {
		if round > maxRounds {
			return nil, fmt.Errorf("%d rounds: %w", round, ErrChainsUnstable)
		}
		t.sortByLength()
		m, err := matrix.FromSlices(t.rows)
		if err != nil {
			return nil, err
		}
		red, err := matrix.StepwiseForm(m, reduceOpts...)
		if err != nil {
			return nil, err
		}
		if red.Equal(m) {
			break
		}

		rows, lens := red.Slices(), t.lens
		t.rows, t.lens = nil, nil
		zero := scalar.Zero[T]()
		for i, row := range rows {
			for k := 0; k < t.width-lens[i]; k++ {
				b := t.block(row, k)
				for c := range b {
					b[c] = zero
				}
			}
			t.push(row)
		}
	}

	chains := make([][]*vector.Vector[T], len(t.rows))
	for i, row := range t.rows {
		for k := t.width - t.lens[i]; k < t.width; k++ {
			chains[i] = append(chains[i], vector.FromSlice(t.block(row, k)))
		}
	}

	return chains, nil
}

// sortByLength orders rows longest chain first, stably.
func (t *chainTable[T]) sortByLength() {
	idx := make([]int, len(t.rows))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(t.lens[b], t.lens[a]) })
	rows := make([][]T, len(idx))
	lens := make([]int, len(idx))
	for dst, src := range idx {
		rows[dst], lens[dst] = t.rows[src], t.lens[src]
	}
	t.rows, t.lens = rows, lens
}

// jordanCell returns the k×k cell with λ on the diagonal and 1 on the
// subdiagonal.
func jordanCell[T scalar.Scalar[T]](k int, lambda T) *matrix.Dense[T] {
	c, _ := matrix.Zeros[T](k, k)
	one := scalar.One[T]()
	for i := 0; i < k; i++ {
		_ = c.Set(i, i, lambda)
		if i+1 < k {
			_ = c.Set(i+1, i, one)
		}
	}

	return c
}
