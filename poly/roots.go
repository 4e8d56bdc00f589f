// SPDX-License-Identifier: MIT

package poly

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	fscalar "gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/linalg/rational"
	"github.com/katalvlaran/linalg/scalar"
)

const opRoots = "Roots"

const (
	// maxDivisorSearch bounds |c| for the divisor stage (sqrt(c) trials).
	maxDivisorSearch = 1 << 40

	// maxCandidates bounds the ±a/b pairs tried for rational coefficients;
	// above it only integer candidates are tried.
	maxCandidates = 1 << 14
)

// root is a distinct root with its multiplicity.
type root[T scalar.Scalar[T]] struct {
	value T
	at    float64
	mult  int
}

// Roots returns the real roots of p, each repeated by its multiplicity.
// MAIN DESCRIPTION:
//   - Stage 1: t = 0 with multiplicity equal to the number of trailing zero
//     coefficients. For rational coefficients, denominators are cleared and
//     every ±a/b (a divides the lowest nonzero, b the leading coefficient) is
//     tested exactly, so every rational root is found here. Other element
//     types try ±d for the divisors d of an integer-valued lowest
//     coefficient. Hits are counted with Multiplicity.
//   - Stage 2 (only if stage 1 found fewer than Degree() roots): scan
//     [-bound, bound], bound = max|c_i|/|c_n| + 1, on a grid of WithScanStep.
//     An exact zero on the grid is a root; a strict sign change between two
//     neighbours is a root at the midpoint rounded to RootPrecision decimals.
//     After a hit the next 9 grid points are skipped. Candidates within 1e-3
//     of a known root are ignored.
//   - Stage 3: sort by multiplicity descending, ties by value ascending.
//
// Errors:
//   - ErrZeroPolynomial for the zero polynomial.
//   - ErrComplexRoots when the multiplicities do not sum to Degree().
//   - ErrOverflow on rational overflow during exact evaluation.
//
// Notes:
//   - Scanned roots are approximations; for rationals they are irrational
//     roots converted with rational.FromFloat's bounded denominator.
//   - Even-multiplicity irrational roots produce no sign change and are
//     missed, surfacing as ErrComplexRoots.
func Roots[T scalar.Scalar[T]](p *Polynomial[T], opts ...Option) (out []T, err error) {
	defer rational.Recover(&err)
	if p.IsZero() {
		return nil, polyErrorf(opRoots, ErrZeroPolynomial)
	}
	o := gatherOptions(opts...)
	n := p.Degree()

	found := exactRoots(p)
	total := 0
	for _, r := range found {
		total += r.mult
	}
	o.logger.Debug("exact roots", "degree", n, "distinct", len(found), "count", total)

	if total != n {
		found = scanRoots(p, found, o)
	}

	slices.SortStableFunc(found, func(a, b root[T]) int {
		if c := cmp.Compare(b.mult, a.mult); c != 0 {
			return c
		}
		return cmp.Compare(a.at, b.at)
	})
	out = make([]T, 0, n)
	for _, r := range found {
		for k := 0; k < r.mult; k++ {
			out = append(out, r.value)
		}
	}
	if len(out) != n {
		return nil, polyErrorf(opRoots, fmt.Errorf("%d real roots for degree %d: %w", len(out), n, ErrComplexRoots))
	}

	return out, nil
}

// exactRoots implements stage 1.
func exactRoots[T scalar.Scalar[T]](p *Polynomial[T]) []root[T] {
	var found []root[T]
	lowest := 0
	for lowest < len(p.c) && p.c[lowest].IsZero() {
		lowest++
	}
	if lowest > 0 {
		found = append(found, root[T]{value: scalar.Zero[T](), at: 0, mult: lowest})
	}

	for _, r := range candidates(p.c[lowest:]) {
		if m, err := multiplicityAt(p, r); err == nil && m > 0 {
			found = append(found, root[T]{value: r, at: r.Float64(), mult: m})
		}
	}

	return found
}

// candidates lists the values stage 1 tests exactly. For rational
// coefficients these are all ±a/b with a dividing the lowest and b the
// leading coefficient once denominators are cleared; otherwise ±d for the
// divisors d of an integer-valued lowest coefficient.
func candidates[T scalar.Scalar[T]](cs []T) []T {
	if _, exact := any(cs[0]).(rational.Rational); exact {
		out, err := rationalCandidates(cs)
		if err == nil {
			return out
		}
	}
	free := cs[0].Float64()
	if math.Abs(free-math.Round(free)) > 1e-9 || math.Abs(free) > maxDivisorSearch {
		return nil
	}
	var out []T
	for _, d := range divisors(int64(math.Abs(math.Round(free)))) {
		out = append(out, scalar.FromInt[T](d), scalar.FromInt[T](-d))
	}

	return out
}

// rationalCandidates applies the rational root theorem to cs (lowest
// coefficient nonzero). Overflow while clearing denominators is returned as
// an error and the caller falls back to integer divisors.
func rationalCandidates[T scalar.Scalar[T]](cs []T) (out []T, err error) {
	defer rational.Recover(&err)
	qs := make([]rational.Rational, len(cs))
	lcm := int64(1)
	for i, c := range cs {
		qs[i] = any(c).(rational.Rational)
		den := qs[i].Den()
		lcm = rational.FromInt(lcm / gcd64(lcm, den)).Mul(rational.FromInt(den)).Num()
	}
	scale := rational.FromInt(lcm)
	low := absInt(qs[0].Mul(scale).Num())
	high := absInt(qs[len(qs)-1].Mul(scale).Num())
	if low > maxDivisorSearch || high > maxDivisorSearch {
		return nil, nil
	}
	nums, dens := divisors(low), divisors(high)
	if len(nums)*len(dens) > maxCandidates {
		dens = []int64{1}
	}
	seen := make(map[rational.Rational]bool, len(nums)*len(dens))
	for _, a := range nums {
		for _, b := range dens {
			r := rational.MustNew(a, b)
			if seen[r] {
				continue
			}
			seen[r] = true
			for _, v := range [2]rational.Rational{r, r.Neg()} {
				out = append(out, any(v).(T))
			}
		}
	}

	return out, nil
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return absInt(a)
}

func absInt(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

// multiplicityAt is Multiplicity with rational overflow turned into an error,
// so a huge divisor candidate is skipped instead of aborting Roots.
func multiplicityAt[T scalar.Scalar[T]](p *Polynomial[T], r T) (m int, err error) {
	defer rational.Recover(&err)

	return p.Multiplicity(r), nil
}

// divisors returns the positive divisors of v in ascending order of the
// smaller cofactor.
func divisors(v int64) []int64 {
	var out []int64
	for i := int64(1); i*i <= v; i++ {
		if v%i != 0 {
			continue
		}
		out = append(out, i)
		if j := v / i; j != i {
			out = append(out, j)
		}
	}

	return out
}

// scanRoots implements stage 2, appending to found.
func scanRoots[T scalar.Scalar[T]](p *Polynomial[T], found []root[T], o Options) []root[T] {
	c := p.floats()
	lead := math.Abs(c[len(c)-1])
	rest := make([]float64, len(c)-1)
	for i := range rest {
		rest[i] = math.Abs(c[i])
	}
	bound := 1.0
	if len(rest) > 0 {
		bound = floats.Max(rest)/lead + 1
	}

	step := o.scanStep
	digits := int(math.Ceil(-math.Log10(step)-1e-9)) + 1
	rootDigits := max(RootPrecision, digits-1)
	known := func(x float64) bool {
		for _, r := range found {
			if fscalar.EqualWithinAbs(r.at, x, mergeTolerance) {
				return true
			}
		}
		return false
	}
	add := func(x float64) {
		m := floatMultiplicity(c, x, o.multTol)
		found = append(found, root[T]{value: scalar.FromFloat[T](x), at: x, mult: m})
		o.logger.Debug("scanned root", "value", x, "multiplicity", m)
	}

	first := int64(math.Ceil(-bound / step))
	last := int64(math.Floor(bound / step))
	o.logger.Debug("scan", "bound", bound, "step", step, "points", last-first+1)
	for k := first; k <= last; k++ {
		x := fscalar.Round(float64(k)*step, digits)
		left := hornerFloat(c, x)
		right := hornerFloat(c, fscalar.Round(float64(k+1)*step, digits))
		switch {
		case left == 0:
			if !known(x) {
				add(x)
				k += 9
			}
		case right != 0 && math.Signbit(left) != math.Signbit(right):
			mid := fscalar.Round(x+step/2, rootDigits)
			if !known(mid) {
				add(mid)
				k += 9
			}
		}
	}

	return found
}

// floatMultiplicity counts 1 + consecutive derivatives with |p⁽ᵏ⁾(x)| <= tol.
func floatMultiplicity(c []float64, x, tol float64) int {
	m := 1
	for d := derivFloat(c); len(d) > 0 && math.Abs(hornerFloat(d, x)) <= tol; d = derivFloat(d) {
		m++
	}

	return m
}
