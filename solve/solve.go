// SPDX-License-Identifier: MIT

package solve

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/rational"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// ---------- operation tags ----------

const (
	opSolve          = "Solve"
	opKernelBasis    = "FindKernelBasis"
	opImageBasis     = "FindImageBasis"
	opKernelAndImage = "KernelAndImage"
	opSolveMatrix    = "SolveMatrix"
)

// Solve classifies and solves A·x = b.
// MAIN DESCRIPTION:
//   - Stage 1: reduce [A | b] to identity form. Rows whose pivot lies in A's
//     columns count rank(A); a row whose only nonzero entry is its right-hand
//     side means rank([A|b]) > rank(A).
//   - Stage 2 (ranks differ): the system is inconsistent. Solve the normal
//     equations AᵗA·x = Aᵗb instead and report the result as Inconsistent.
//   - Stage 3 (cols == rank): Unique, x is the last column of the reduced form.
//   - Stage 4 (cols > rank): Manifold, see manifoldFrom.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(b) != A.Rows()).
//   - ErrRecursionDepth when the normal equations themselves come out
//     inconsistent more than WithMaxDepth times (float noise only).
//   - ErrFreeVariableMismatch, ErrOverflow.
func Solve[T scalar.Scalar[T]](a *matrix.Dense[T], b *vector.Vector[T], opts ...Option) (sol *Solution[T], err error) {
	defer rational.Recover(&err)
	if err = matrix.ValidateNotNil(a); err != nil {
		return nil, solveErrorf(opSolve, err)
	}
	if err = matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, solveErrorf(opSolve, err)
	}

	if sol, err = solve(a, b, gatherOptions(opts...), 0); err != nil {
		return nil, solveErrorf(opSolve, err)
	}

	return sol, nil
}

func solve[T scalar.Scalar[T]](a *matrix.Dense[T], b *vector.Vector[T], o Options, depth int) (*Solution[T], error) {
	n := a.Cols()
	aug, err := matrix.AddColumn(a, b)
	if err != nil {
		return nil, err
	}
	red, err := matrix.IdentityForm(aug, o.matrixOptions()...)
	if err != nil {
		return nil, err
	}
	rows := red.Slices()

	rank, consistent := 0, true
	for _, row := range rows {
		if leadingColumn(row) < n {
			rank++
		} else {
			consistent = false
		}
	}

	if !consistent {
		o.logger.Debug("solve", "kind", Inconsistent, "rank", rank, "cols", n, "depth", depth)
		if depth+1 > o.maxDepth {
			return nil, fmt.Errorf("depth %d: %w", depth+1, ErrRecursionDepth)
		}
		at := matrix.Transpose(a)
		ata, err := matrix.Mul(at, a)
		if err != nil {
			return nil, err
		}
		atb, err := matrix.MatVec(at, b)
		if err != nil {
			return nil, err
		}
		pseudo, err := solve(ata, atb, o, depth+1)
		if err != nil {
			return nil, err
		}

		return &Solution[T]{Kind: Inconsistent, X: pseudo.X, Manifold: pseudo.Manifold}, nil
	}

	if rank == n {
		o.logger.Debug("solve", "kind", Unique, "rank", rank, "cols", n, "depth", depth)
		x := make([]T, n)
		for i, row := range rows {
			x[i] = row[n]
		}

		return &Solution[T]{Kind: Unique, X: vector.FromSlice(x)}, nil
	}

	o.logger.Debug("solve", "kind", Manifold, "rank", rank, "cols", n, "depth", depth)
	lm, err := manifoldFrom(rows, n)
	if err != nil {
		return nil, err
	}

	return &Solution[T]{Kind: Manifold, Manifold: lm}, nil
}

// manifoldFrom builds the solution manifold of a consistent reduced system.
// rows is the identity form of [A | b] (every row has its pivot in [0, n)).
//   - Shift: row r's right-hand side sits at row r's pivot column.
//   - Basis: one vector per free (non-pivot) column f, with 1 at f, 0 at the
//     other free columns and -rows[r][f] at pivot column of row r.
func manifoldFrom[T scalar.Scalar[T]](rows [][]T, n int) (*LinearManifold[T], error) {
	zero, one := scalar.Zero[T](), scalar.One[T]()
	pivots := make([]int, len(rows))
	isPivot := make([]bool, n)
	shift := make([]T, n)
	for k := range shift {
		shift[k] = zero
	}
	for r, row := range rows {
		pivots[r] = leadingColumn(row)
		isPivot[pivots[r]] = true
		shift[pivots[r]] = row[n]
	}

	free := make([]int, 0, n)
	for k := 0; k < n; k++ {
		if !isPivot[k] {
			free = append(free, k)
		}
	}
	if len(free) != n-len(rows) {
		return nil, fmt.Errorf("%d free of %d columns at rank %d: %w", len(free), n, len(rows), ErrFreeVariableMismatch)
	}

	basis := make([]*vector.Vector[T], len(free))
	for i, f := range free {
		v := make([]T, n)
		for k := range v {
			v[k] = zero
		}
		v[f] = one
		for r, row := range rows {
			v[pivots[r]] = row[f].Neg().Normalize()
		}
		basis[i] = vector.FromSlice(v)
	}

	return &LinearManifold[T]{Shift: vector.FromSlice(shift), Basis: basis}, nil
}

// leadingColumn returns the first nonzero column of row, or len(row).
func leadingColumn[T scalar.Scalar[T]](row []T) int {
	for k, v := range row {
		if !v.IsZero() {
			return k
		}
	}

	return len(row)
}
