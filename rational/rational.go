// SPDX-License-Identifier: MIT

// Package rational - the Rational value type and its arithmetic.
//
// Purpose:
//   - Exact fraction arithmetic for the reduction engine (no rounding noise).
//   - Keep every value reduced: gcd(|num|, den) == 1, den > 0, zero is 0/1.
//
// Determinism:
//   - All operations are pure; results depend only on the operands.
//
// Complexity quicksheet:
//   - Add/Sub/Mul/Quo: O(log min(|a|,|b|)) for the gcd; Cmp: O(1) via 128-bit products.

package rational

import (
	"fmt"
	"math"
	"math/bits"
)

// DefaultMaxDenominator bounds the denominator chosen by FromFloat64.
const DefaultMaxDenominator int64 = 1_000_000

// Rational is an exact fraction num/den in lowest terms.
// The zero value is a valid 0 (den 0 is read as 1).
type Rational struct {
	num int64
	den int64
}

// Zero is the canonical 0/1.
var Zero = Rational{num: 0, den: 1}

// One is the canonical 1/1.
var One = Rational{num: 1, den: 1}

// New returns num/den reduced to lowest terms.
// MAIN DESCRIPTION:
//   - Validate the denominator, move the sign to the numerator, divide by the gcd.
//
// Behavior highlights:
//   - 0/0 is normalised to 0/1 (kept from the reference behaviour of the engine).
//   - Any other x/0 returns ErrZeroDenominator.
//
// Complexity:
//   - Time O(log min(|num|,|den|)), Space O(1).
func New(num, den int64) (Rational, error) {
	if den == 0 {
		if num == 0 {
			return Zero, nil
		}
		return Zero, fmt.Errorf("New(%d, 0): %w", num, ErrZeroDenominator)
	}

	return reduce(num, den), nil
}

// MustNew is New that panics on a zero denominator. Intended for literals in
// tests and examples.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// FromInt returns n/1.
func FromInt(n int64) Rational { return Rational{num: n, den: 1} }

// reduce normalises sign and divides by the gcd. den must be non-zero.
func reduce(num, den int64) Rational {
	if num == 0 {
		return Zero
	}
	if den < 0 {
		num, den = neg64(num), neg64(den)
	}
	g := gcd(absU(num), uint64(den))
	if g > 1 {
		num /= int64(g)
		den /= int64(g)
	}

	return Rational{num: num, den: den}
}

// Num returns the numerator (carries the sign).
func (x Rational) Num() int64 { return x.num }

// Den returns the (positive) denominator.
func (x Rational) Den() int64 { return x.denom() }

func (x Rational) denom() int64 {
	if x.den == 0 {
		return 1
	}

	return x.den
}

// Sign returns -1, 0 or +1.
func (x Rational) Sign() int {
	switch {
	case x.num < 0:
		return -1
	case x.num > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports x == 0.
func (x Rational) IsZero() bool { return x.num == 0 }

// IsInteger reports whether the denominator is 1.
func (x Rational) IsInteger() bool { return x.denom() == 1 }

// Add returns x + y using the lcm of the denominators.
func (x Rational) Add(y Rational) Rational {
	if y.num == 0 {
		return x.canon()
	}
	if x.num == 0 {
		return y.canon()
	}
	xd, yd := x.denom(), y.denom()
	if xd == yd {
		return reduce(add64(x.num, y.num), xd)
	}
	g := int64(gcd(uint64(xd), uint64(yd)))
	// x.num*(yd/g) + y.num*(xd/g) over xd*(yd/g)
	n := add64(mul64(x.num, yd/g), mul64(y.num, xd/g))
	d := mul64(xd, yd/g)

	return reduce(n, d)
}

// Sub returns x - y.
func (x Rational) Sub(y Rational) Rational { return x.Add(y.Neg()) }

// Mul returns x * y with cross-cancellation before multiplying.
func (x Rational) Mul(y Rational) Rational {
	if x.num == 0 || y.num == 0 {
		return Zero
	}
	xd, yd := x.denom(), y.denom()
	g1 := int64(gcd(absU(x.num), uint64(yd)))
	g2 := int64(gcd(absU(y.num), uint64(xd)))
	n := mul64(x.num/g1, y.num/g2)
	d := mul64(xd/g2, yd/g1)

	return reduce(n, d)
}

// Quo returns x / y. Division by zero panics with ErrDivisionByZero
// (recoverable through Recover).
func (x Rational) Quo(y Rational) Rational {
	if y.num == 0 {
		panic(fmt.Errorf("rational: Quo(%s, 0): %w", x, ErrDivisionByZero))
	}

	return x.Mul(y.Inv())
}

// Inv returns 1/x. Panics with ErrDivisionByZero when x == 0.
func (x Rational) Inv() Rational {
	if x.num == 0 {
		panic(fmt.Errorf("rational: Inv(0): %w", ErrDivisionByZero))
	}

	return reduce(x.denom(), x.num)
}

// Neg returns -x.
func (x Rational) Neg() Rational {
	return Rational{num: neg64(x.num), den: x.denom()}
}

// Abs returns |x|.
func (x Rational) Abs() Rational {
	if x.num < 0 {
		return x.Neg()
	}

	return x.canon()
}

// Cmp compares x and y exactly and returns -1, 0 or +1.
// Cross products are formed in 128 bits, so Cmp never overflows.
func (x Rational) Cmp(y Rational) int {
	sx, sy := x.Sign(), y.Sign()
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}
	if sx == 0 {
		return 0
	}
	hi1, lo1 := bits.Mul64(absU(x.num), uint64(y.denom()))
	hi2, lo2 := bits.Mul64(absU(y.num), uint64(x.denom()))
	c := cmp128(hi1, lo1, hi2, lo2)
	if sx < 0 {
		c = -c
	}

	return c
}

// Less reports x < y.
func (x Rational) Less(y Rational) bool { return x.Cmp(y) < 0 }

// Equal reports exact equality.
func (x Rational) Equal(y Rational) bool {
	return x.num == y.num && x.denom() == y.denom()
}

// Float64 returns the nearest float64 approximation.
func (x Rational) Float64() float64 {
	return float64(x.num) / float64(x.denom())
}

// String renders "n" for integers and "n/d" otherwise.
func (x Rational) String() string {
	if x.denom() == 1 {
		return fmt.Sprintf("%d", x.num)
	}

	return fmt.Sprintf("%d/%d", x.num, x.denom())
}

func (x Rational) canon() Rational { return Rational{num: x.num, den: x.denom()} }

// ---------- Scalar surface (see package scalar) ----------

// Normalize is the identity: exact values need no noise suppression.
func (x Rational) Normalize() Rational { return x.canon() }

// FromInt64 builds n/1; the receiver is ignored.
func (Rational) FromInt64(n int64) Rational { return FromInt(n) }

// FromFloat64 approximates f with denominator at most DefaultMaxDenominator;
// the receiver is ignored. Non-finite or out-of-range input panics with an
// error wrapping ErrOverflow.
func (Rational) FromFloat64(f float64) Rational {
	r, err := FromFloat(f, DefaultMaxDenominator)
	if err != nil {
		panic(err)
	}

	return r
}

// FromFloat returns the continued-fraction convergent of f whose denominator
// does not exceed maxDen.
// Implementation:
//   - Stage 1: reject NaN/±Inf and |f| beyond int64.
//   - Stage 2: expand the continued fraction, keeping the last convergent
//     whose denominator fits; stop early when the remainder vanishes.
//
// Complexity:
//   - Time O(log maxDen), Space O(1).
func FromFloat(f float64, maxDen int64) (Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64 {
		return Zero, fmt.Errorf("FromFloat(%g): %w", f, ErrOverflow)
	}
	if maxDen < 1 {
		maxDen = 1
	}
	neg := f < 0
	x := math.Abs(f)

	// h/k convergents; (h0,k0) = (0,1), (h1,k1) = (1,0).
	var h0, h1, k0, k1 int64 = 0, 1, 1, 0
	rem := x
	for i := 0; i < 64; i++ {
		a := math.Floor(rem)
		if a >= math.MaxInt64 {
			break
		}
		ai := int64(a)
		if k1 != 0 && float64(ai)*float64(k1) > float64(maxDen) {
			break
		}
		if float64(ai)*float64(h1) > math.MaxInt64/2 {
			break
		}
		k2 := ai*k1 + k0
		if k2 > maxDen {
			break
		}
		h2 := ai*h1 + h0
		h0, h1, k0, k1 = h1, h2, k1, k2

		frac := rem - a
		if frac < 1e-12 || math.Abs(x-float64(h1)/float64(k1)) < 1e-15 {
			break
		}
		rem = 1 / frac
	}
	if k1 == 0 {
		// maxDen admitted no convergent; fall back to the integer part.
		h1, k1 = int64(math.Round(x)), 1
	}
	if neg {
		h1 = -h1
	}

	return reduce(h1, k1), nil
}

// ---------- checked int64 helpers ----------

func add64(a, b int64) int64 {
	c := a + b
	if (c > a) != (b > 0) {
		panic(&OverflowError{Op: "add", A: a, B: b})
	}

	return c
}

func mul64(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	c := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || c/b != a {
		panic(&OverflowError{Op: "mul", A: a, B: b})
	}

	return c
}

func neg64(a int64) int64 {
	if a == math.MinInt64 {
		panic(&OverflowError{Op: "neg", A: a})
	}

	return -a
}

// absU returns |n| as uint64; safe for math.MinInt64.
func absU(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}

	return uint64(n)
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func cmp128(hi1, lo1, hi2, lo2 uint64) int {
	switch {
	case hi1 < hi2:
		return -1
	case hi1 > hi2:
		return 1
	case lo1 < lo2:
		return -1
	case lo1 > lo2:
		return 1
	default:
		return 0
	}
}
