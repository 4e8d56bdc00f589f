// SPDX-License-Identifier: MIT

package vector

import (
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linalg/rational"
	"github.com/katalvlaran/linalg/scalar"
)

// Vector is a fixed-length sequence of scalars.
type Vector[T scalar.Scalar[T]] struct {
	data []T
}

// New returns a zero vector of length n.
func New[T scalar.Scalar[T]](n int) (*Vector[T], error) {
	if n <= 0 {
		return nil, vectorErrorf("New", ErrInvalidLength, n)
	}

	return zeros[T](n), nil
}

func zeros[T scalar.Scalar[T]](n int) *Vector[T] {
	data := make([]T, n)
	zero := scalar.Zero[T]()
	for i := range data {
		data[i] = zero
	}

	return &Vector[T]{data: data}
}

// FromSlice copies vals into a new vector.
func FromSlice[T scalar.Scalar[T]](vals []T) *Vector[T] {
	data := make([]T, len(vals))
	copy(data, vals)

	return &Vector[T]{data: data}
}

// Of builds a vector from its arguments.
func Of[T scalar.Scalar[T]](vals ...T) *Vector[T] { return FromSlice(vals) }

// FromInts builds a vector of integer-valued scalars.
func FromInts[T scalar.Scalar[T]](vals ...int64) *Vector[T] {
	data := make([]T, len(vals))
	for i, v := range vals {
		data[i] = scalar.FromInt[T](v)
	}

	return &Vector[T]{data: data}
}

// Len returns the number of coordinates.
func (v *Vector[T]) Len() int { return len(v.data) }

// At returns coordinate i.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, vectorErrorf("At", ErrOutOfRange, i)
	}

	return v.data[i], nil
}

// Set assigns coordinate i in place.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf("Set", ErrOutOfRange, i)
	}
	v.data[i] = x

	return nil
}

// Slice returns a copy of the coordinates.
func (v *Vector[T]) Slice() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy.
func (v *Vector[T]) Clone() *Vector[T] { return FromSlice(v.data) }

// Add returns v + w.
func (v *Vector[T]) Add(w *Vector[T]) (res *Vector[T], err error) {
	defer rational.Recover(&err)
	if len(v.data) != len(w.data) {
		return nil, vectorErrorf("Add", ErrDimensionMismatch, len(v.data), len(w.data))
	}
	out := make([]T, len(v.data))
	for i := range v.data {
		out[i] = v.data[i].Add(w.data[i]).Normalize()
	}

	return &Vector[T]{data: out}, nil
}

// Sub returns v - w.
func (v *Vector[T]) Sub(w *Vector[T]) (res *Vector[T], err error) {
	defer rational.Recover(&err)
	if len(v.data) != len(w.data) {
		return nil, vectorErrorf("Sub", ErrDimensionMismatch, len(v.data), len(w.data))
	}
	out := make([]T, len(v.data))
	for i := range v.data {
		out[i] = v.data[i].Sub(w.data[i]).Normalize()
	}

	return &Vector[T]{data: out}, nil
}

// Dot returns Σ v_i·w_i.
func (v *Vector[T]) Dot(w *Vector[T]) (sum T, err error) {
	defer rational.Recover(&err)
	sum = scalar.Zero[T]()
	if len(v.data) != len(w.data) {
		return sum, vectorErrorf("Dot", ErrDimensionMismatch, len(v.data), len(w.data))
	}
	for i := range v.data {
		sum = sum.Add(v.data[i].Mul(w.data[i]))
	}

	return sum.Normalize(), nil
}

// Scale returns k·v. Rational overflow panics; callers recover it.
func (v *Vector[T]) Scale(k T) *Vector[T] {
	out := make([]T, len(v.data))
	for i := range v.data {
		out[i] = v.data[i].Mul(k).Normalize()
	}

	return &Vector[T]{data: out}
}

// Equal reports equal length and coordinate-wise equality.
func (v *Vector[T]) Equal(w *Vector[T]) bool {
	if len(v.data) != len(w.data) {
		return false
	}
	for i := range v.data {
		if !v.data[i].Equal(w.data[i]) {
			return false
		}
	}

	return true
}

// IsZero reports whether every coordinate is zero.
func (v *Vector[T]) IsZero() bool { return v.FirstNonZero() == -1 }

// FirstNonZero returns the index of the first nonzero coordinate, or -1.
func (v *Vector[T]) FirstNonZero() int {
	for i, x := range v.data {
		if !x.IsZero() {
			return i
		}
	}

	return -1
}

// Swap returns a copy of v with coordinates i and j exchanged.
func (v *Vector[T]) Swap(i, j int) (*Vector[T], error) {
	n := len(v.data)
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, vectorErrorf("Swap", ErrOutOfRange, i, j)
	}
	out := v.Clone()
	out.data[i], out.data[j] = out.data[j], out.data[i]

	return out, nil
}

// Segment returns the n coordinates starting at start.
func (v *Vector[T]) Segment(start, n int) (*Vector[T], error) {
	if start < 0 || n < 0 || start+n > len(v.data) {
		return nil, vectorErrorf("Segment", ErrOutOfRange, start, n)
	}

	return FromSlice(v.data[start : start+n]), nil
}

// Concat returns v followed by w.
func (v *Vector[T]) Concat(w *Vector[T]) *Vector[T] {
	out := make([]T, 0, len(v.data)+len(w.data))
	out = append(out, v.data...)
	out = append(out, w.data...)

	return &Vector[T]{data: out}
}

// Normalize applies the element type's noise policy to every coordinate.
func (v *Vector[T]) Normalize() *Vector[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = x.Normalize()
	}

	return &Vector[T]{data: out}
}

// Floats returns the coordinates as float64.
func (v *Vector[T]) Floats() []float64 {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = x.Float64()
	}

	return out
}

// Norm returns the Euclidean length computed in float64.
func (v *Vector[T]) Norm() float64 {
	if len(v.data) == 0 {
		return 0
	}

	return floats.Norm(v.Floats(), 2)
}

// String renders "[a, b, c]" using each element's String.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(x.String())
	}
	sb.WriteByte(']')

	return sb.String()
}
