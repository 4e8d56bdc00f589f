// SPDX-License-Identifier: MIT

// Package matrix provides the generic dense matrix Dense[T] and the
// Gauss–Jordan row-reduction engine the rest of the module is built on.
//
// The matrix package provides:
//
//   - Dense[T]: row-major storage over any scalar.Scalar element type
//     (rational.Rational for exact work, scalar.Float for measured data).
//   - Constructors: NewDense/Zeros, Identity, FromSlices, FromInts, FromRows,
//     FromColumns.
//   - Structure: GetRow/GetColumn/SetRow/SetColumn, Transpose, AddColumn,
//     AddMatrix, DeleteColumn, SubMatrix, BlockDiagonal, DeleteZeroRows.
//   - Algebra: Add, Sub, Mul, Scale, MatVec, Trace, Inverse.
//   - Reduction: StepwiseForm (optionally restricted to an active block of
//     trailing columns, optionally chain-preserving), IdentityForm, Rank,
//     Determinant.
//   - gonum interop: ToGonum, FromGonum and the zero-copy Dense.Gonum view.
//
// Inputs are never mutated by package functions. Rational overflow surfaces
// as ErrOverflow. Reduction steps are reported at Debug level to the
// *slog.Logger passed with WithLogger.
package matrix
