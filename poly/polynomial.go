// SPDX-License-Identifier: MIT

package poly

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/linalg/scalar"
)

// Polynomial is an immutable polynomial with coefficients low-degree first.
// Trailing zero coefficients are trimmed; the zero polynomial keeps a single
// zero coefficient and has degree 0.
type Polynomial[T scalar.Scalar[T]] struct {
	c []T
}

// New copies coeffs (low-degree first) into a trimmed polynomial.
// New() with no coefficients is the zero polynomial.
func New[T scalar.Scalar[T]](coeffs ...T) *Polynomial[T] {
	c := make([]T, len(coeffs))
	for i, v := range coeffs {
		c[i] = v.Normalize()
	}

	return trimmed(c)
}

// FromInts builds a polynomial with integer coefficients, low-degree first.
func FromInts[T scalar.Scalar[T]](coeffs ...int64) *Polynomial[T] {
	c := make([]T, len(coeffs))
	for i, v := range coeffs {
		c[i] = scalar.FromInt[T](v)
	}

	return trimmed(c)
}

// trimmed takes ownership of c.
func trimmed[T scalar.Scalar[T]](c []T) *Polynomial[T] {
	n := len(c)
	for n > 1 && c[n-1].IsZero() {
		n--
	}
	if n == 0 {
		return &Polynomial[T]{c: []T{scalar.Zero[T]()}}
	}

	return &Polynomial[T]{c: c[:n]}
}

// Degree returns len(Coeffs()) - 1.
func (p *Polynomial[T]) Degree() int { return len(p.c) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial[T]) IsZero() bool { return len(p.c) == 1 && p.c[0].IsZero() }

// Coeffs returns a copy of the coefficients, low-degree first.
func (p *Polynomial[T]) Coeffs() []T {
	out := make([]T, len(p.c))
	copy(out, p.c)

	return out
}

// Coeff returns the coefficient of t^i (zero beyond the degree).
func (p *Polynomial[T]) Coeff(i int) T {
	if i < 0 || i >= len(p.c) {
		return scalar.Zero[T]()
	}

	return p.c[i]
}

// Equal reports coefficient-wise equality.
func (p *Polynomial[T]) Equal(q *Polynomial[T]) bool {
	if len(p.c) != len(q.c) {
		return false
	}
	for i := range p.c {
		if !p.c[i].Equal(q.c[i]) {
			return false
		}
	}

	return true
}

// Eval returns p(x) by Horner's rule in T's arithmetic.
// Rational overflow panics; Roots recovers it.
func (p *Polynomial[T]) Eval(x T) T {
	acc := scalar.Zero[T]()
	for i := len(p.c) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.c[i])
	}

	return acc.Normalize()
}

// EvalFloat returns p(x) in float64.
func (p *Polynomial[T]) EvalFloat(x float64) float64 {
	return hornerFloat(p.floats(), x)
}

func (p *Polynomial[T]) floats() []float64 {
	out := make([]float64, len(p.c))
	for i, v := range p.c {
		out[i] = v.Float64()
	}

	return out
}

// Derivative returns p'.
func (p *Polynomial[T]) Derivative() *Polynomial[T] {
	if len(p.c) == 1 {
		return New[T]()
	}
	d := make([]T, len(p.c)-1)
	for i := range d {
		d[i] = p.c[i+1].Mul(scalar.FromInt[T](int64(i + 1))).Normalize()
	}

	return trimmed(d)
}

// Mul returns the product p·q.
func (p *Polynomial[T]) Mul(q *Polynomial[T]) *Polynomial[T] {
	out := make([]T, len(p.c)+len(q.c)-1)
	for k := range out {
		out[k] = scalar.Zero[T]()
	}
	for i, a := range p.c {
		if a.IsZero() {
			continue
		}
		for j, b := range q.c {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	for k := range out {
		out[k] = out[k].Normalize()
	}

	return trimmed(out)
}

// Multiplicity returns how many times r is a root of p: 0 when p(r) != 0,
// otherwise 1 plus the number of consecutive vanishing derivatives at r.
// Zero tests use T's IsZero, so the count is exact for rationals.
func (p *Polynomial[T]) Multiplicity(r T) int {
	if p.IsZero() {
		return 0
	}
	m := 0
	for d := p; !d.IsZero() && d.Eval(r).IsZero(); d = d.Derivative() {
		m++
	}

	return m
}

// String renders p as "6 - 7t + t^3", lowest degree first. Unit
// coefficients of t are omitted and zero terms skipped.
func (p *Polynomial[T]) String() string {
	var sb strings.Builder
	zero := scalar.Zero[T]()
	for i, v := range p.c {
		if v.IsZero() {
			continue
		}
		neg := v.Cmp(zero) < 0
		switch {
		case sb.Len() == 0 && neg:
			sb.WriteString("-")
		case sb.Len() > 0 && neg:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		abs := v.Abs()
		if i == 0 || !scalar.IsOne(abs) {
			sb.WriteString(abs.String())
		}
		switch {
		case i == 1:
			sb.WriteString("t")
		case i > 1:
			sb.WriteString("t^" + strconv.Itoa(i))
		}
	}
	if sb.Len() == 0 {
		return zero.String()
	}

	return sb.String()
}

func hornerFloat(c []float64, x float64) float64 {
	acc := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		acc = acc*x + c[i]
	}

	return acc
}

func derivFloat(c []float64) []float64 {
	if len(c) <= 1 {
		return nil
	}
	d := make([]float64, len(c)-1)
	for i := range d {
		d[i] = float64(i+1) * c[i+1]
	}

	return d
}
