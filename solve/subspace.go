// SPDX-License-Identifier: MIT

package solve

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/rational"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// FindKernelBasis returns a basis of ker A = {x : A·x = 0}.
// The basis is the manifold basis of Solve(A, 0), one vector per free column.
//
// Errors:
//   - ErrDegenerateManifold when the kernel is {0}.
//   - ErrNilMatrix, ErrOverflow.
func FindKernelBasis[T scalar.Scalar[T]](a *matrix.Dense[T], opts ...Option) ([]*vector.Vector[T], error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, solveErrorf(opKernelBasis, err)
	}
	zero, err := vector.New[T](a.Rows())
	if err != nil {
		return nil, solveErrorf(opKernelBasis, err)
	}
	sol, err := Solve(a, zero, opts...)
	if err != nil {
		return nil, solveErrorf(opKernelBasis, err)
	}
	if sol.Kind != Manifold {
		return nil, solveErrorf(opKernelBasis, fmt.Errorf("kind %s: %w", sol.Kind, ErrDegenerateManifold))
	}

	return sol.Manifold.Basis, nil
}

// FindImageBasis returns a basis of im A (the column space) as the nonzero
// rows of StepwiseForm(Aᵗ). The zero matrix yields an empty basis.
func FindImageBasis[T scalar.Scalar[T]](a *matrix.Dense[T], opts ...Option) ([]*vector.Vector[T], error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, solveErrorf(opImageBasis, err)
	}
	o := gatherOptions(opts...)
	red, err := matrix.StepwiseForm(matrix.Transpose(a), o.matrixOptions()...)
	if err != nil {
		return nil, solveErrorf(opImageBasis, err)
	}

	basis := make([]*vector.Vector[T], 0, red.Rows())
	for i := 0; i < red.Rows(); i++ {
		row, _ := red.GetRow(i)
		if !row.IsZero() {
			basis = append(basis, row)
		}
	}

	return basis, nil
}

// KernelAndImage computes both subspaces of a square A with one reduction.
// Implementation:
//   - Stage 1: build [I | Aᵗ]; row i is e_i followed by column i of A.
//   - Stage 2: StepwiseForm with the active block restricted to the last n
//     columns. Every row stays of the form [c | A·c].
//   - Stage 3: rows with a zero trailing block contribute c to the kernel;
//     the other rows contribute A·c to the image.
//
// Behavior highlights:
//   - len(kernel) + len(image) == n (rank–nullity).
//   - Either slice may be empty.
//
// Errors:
//   - ErrNonSquare, ErrNilMatrix, ErrOverflow.
func KernelAndImage[T scalar.Scalar[T]](a *matrix.Dense[T], opts ...Option) (kernel, image []*vector.Vector[T], err error) {
	defer rational.Recover(&err)
	if err = matrix.ValidateSquare(a); err != nil {
		return nil, nil, solveErrorf(opKernelAndImage, err)
	}
	o := gatherOptions(opts...)
	n := a.Rows()
	id, _ := matrix.Identity[T](n)
	aug, err := matrix.AddMatrix(id, matrix.Transpose(a))
	if err != nil {
		return nil, nil, solveErrorf(opKernelAndImage, err)
	}
	red, err := matrix.StepwiseForm(aug, append(o.matrixOptions(), matrix.WithActiveBlock(n))...)
	if err != nil {
		return nil, nil, solveErrorf(opKernelAndImage, err)
	}

	for i := 0; i < n; i++ {
		row, _ := red.GetRow(i)
		passive, _ := row.Segment(0, n)
		trailing, _ := row.Segment(n, n)
		if trailing.IsZero() {
			kernel = append(kernel, passive)
		} else {
			image = append(image, trailing)
		}
	}
	o.logger.Debug("kernel and image", "n", n, "kernel", len(kernel), "image", len(image))

	return kernel, image, nil
}
