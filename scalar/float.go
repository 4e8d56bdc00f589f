// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"strconv"

	fscalar "gonum.org/v1/gonum/floats/scalar"
)

const (
	// Tolerance is the absolute tolerance of Float equality and zero tests.
	Tolerance = 1e-3

	// Precision is the number of decimals Normalize rounds to.
	Precision = 6

	// SnapTolerance is the largest distance (inclusive) to an integer that
	// Normalize collapses onto that integer.
	SnapTolerance = 1e-3

	// DisplayPrecision is the number of decimals String prints.
	DisplayPrecision = 4
)

// snapUnits is SnapTolerance expressed in units of 10^-Precision, so the
// boundary comparison is done on integers.
const snapUnits = 1000

// Float is a float64 scalar with tolerance-based equality.
type Float float64

// Add returns x + y.
func (x Float) Add(y Float) Float { return x + y }

// Sub returns x - y.
func (x Float) Sub(y Float) Float { return x - y }

// Mul returns x * y.
func (x Float) Mul(y Float) Float { return x * y }

// Quo returns x / y (IEEE semantics for y == 0).
func (x Float) Quo(y Float) Float { return x / y }

// Neg returns -x.
func (x Float) Neg() Float { return -x }

// Abs returns |x|.
func (x Float) Abs() Float { return Float(math.Abs(float64(x))) }

// IsZero reports |x| <= Tolerance.
func (x Float) IsZero() bool { return x.Equal(0) }

// Equal reports |x - y| <= Tolerance.
func (x Float) Equal(y Float) bool {
	return fscalar.EqualWithinAbs(float64(x), float64(y), Tolerance)
}

// Cmp returns 0 for tolerance-equal values, otherwise the sign of x - y.
func (x Float) Cmp(y Float) int {
	switch {
	case x.Equal(y):
		return 0
	case x < y:
		return -1
	default:
		return 1
	}
}

// Normalize rounds to Precision decimals and snaps near-integers.
// Stage 1: r = round(x, 6).
// Stage 2: n = nearest integer; if |r - n| <= 1e-3 return n, else r.
// Non-finite values pass through unchanged.
func (x Float) Normalize() Float {
	f := float64(x)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return x
	}
	r := fscalar.Round(f, Precision)
	n := math.Round(r)
	if units := math.Round(math.Abs(r-n) * 1e6); units <= snapUnits {
		r = n
	}
	if r == 0 {
		r = 0 // drop negative zero
	}

	return Float(r)
}

// Float64 returns x as float64.
func (x Float) Float64() float64 { return float64(x) }

// String prints x rounded to DisplayPrecision decimals.
func (x Float) String() string {
	r := fscalar.Round(float64(x), DisplayPrecision)
	if r == 0 {
		r = 0
	}

	return strconv.FormatFloat(r, 'f', -1, 64)
}

// FromInt64 returns Float(n); the receiver is ignored.
func (Float) FromInt64(n int64) Float { return Float(n) }

// FromFloat64 returns Float(f); the receiver is ignored.
func (Float) FromFloat64(f float64) Float { return Float(f) }
