// SPDX-License-Identifier: MIT

package solve

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/rational"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// SolveMatrix solves the matrix equation A·X = B for X (A is r×n, B is r×m,
// X is n×m).
// Implementation:
//   - Fast path: A square with det(A) != 0 reduces [A | B] once and takes
//     the right block.
//   - Otherwise every column of B is solved independently with Solve and
//     must have a Unique solution.
//
// Errors:
//   - ErrDimensionMismatch when B.Rows() != A.Rows().
//   - ErrNoSolution when some column is inconsistent or underdetermined.
//   - ErrNilMatrix, ErrOverflow.
func SolveMatrix[T scalar.Scalar[T]](a, b *matrix.Dense[T], opts ...Option) (x *matrix.Dense[T], err error) {
	defer rational.Recover(&err)
	if err = matrix.ValidateNotNil(a); err != nil {
		return nil, solveErrorf(opSolveMatrix, err)
	}
	if err = matrix.ValidateNotNil(b); err != nil {
		return nil, solveErrorf(opSolveMatrix, err)
	}
	if a.Rows() != b.Rows() {
		return nil, solveErrorf(opSolveMatrix,
			fmt.Errorf("rows %d vs %d: %w", a.Rows(), b.Rows(), ErrDimensionMismatch))
	}
	o := gatherOptions(opts...)

	if a.IsSquare() {
		det, err := matrix.Determinant(a, o.matrixOptions()...)
		if err != nil {
			return nil, solveErrorf(opSolveMatrix, err)
		}
		if !det.IsZero() {
			o.logger.Debug("solve matrix", "path", "identity", "n", a.Rows(), "m", b.Cols())
			aug, err := matrix.AddMatrix(a, b)
			if err != nil {
				return nil, solveErrorf(opSolveMatrix, err)
			}
			red, err := matrix.IdentityForm(aug, o.matrixOptions()...)
			if err != nil {
				return nil, solveErrorf(opSolveMatrix, err)
			}

			return matrix.SubMatrix(red, a.Cols(), aug.Cols())
		}
	}

	o.logger.Debug("solve matrix", "path", "columns", "rows", a.Rows(), "cols", a.Cols(), "m", b.Cols())
	cols := make([]*vector.Vector[T], b.Cols())
	for j := range cols {
		bj, _ := b.GetColumn(j)
		sol, err := Solve(a, bj, opts...)
		if err != nil {
			return nil, solveErrorf(opSolveMatrix, err)
		}
		if sol.Kind != Unique {
			return nil, solveErrorf(opSolveMatrix, fmt.Errorf("column %d is %s: %w", j, sol.Kind, ErrNoSolution))
		}
		cols[j] = sol.X
	}

	return matrix.FromColumns(cols...)
}
