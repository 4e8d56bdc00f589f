// SPDX-License-Identifier: MIT

package scalar

// Scalar is the constraint satisfied by element types of the engine.
// Methods never mutate the receiver; constructors ignore it.
type Scalar[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Quo(T) T
	Neg() T
	Abs() T

	IsZero() bool
	Equal(T) bool
	Cmp(T) int

	// Normalize suppresses accumulated rounding noise (identity for exact types).
	Normalize() T
	Float64() float64
	String() string

	FromInt64(int64) T
	FromFloat64(float64) T
}

// Zero returns the additive identity of T.
func Zero[T Scalar[T]]() T {
	var z T

	return z.FromInt64(0)
}

// One returns the multiplicative identity of T.
func One[T Scalar[T]]() T {
	var z T

	return z.FromInt64(1)
}

// FromInt converts n into T.
func FromInt[T Scalar[T]](n int64) T {
	var z T

	return z.FromInt64(n)
}

// FromFloat converts f into T (bounded-denominator approximation for exact types).
func FromFloat[T Scalar[T]](f float64) T {
	var z T

	return z.FromFloat64(f)
}

// IsOne reports whether |v| == 1 under T's equality.
func IsOne[T Scalar[T]](v T) bool {
	return v.Abs().Equal(One[T]())
}
