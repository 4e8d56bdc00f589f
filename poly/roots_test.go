// SPDX-License-Identifier: MIT

package poly_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/poly"
	"github.com/katalvlaran/linalg/rational"
	"github.com/katalvlaran/linalg/scalar"
)

func rootsOf[T scalar.Scalar[T]](t *testing.T, p *poly.Polynomial[T]) []float64 {
	t.Helper()
	roots, err := poly.Roots(p)
	require.NoError(t, err)
	out := make([]float64, len(roots))
	for i, r := range roots {
		out[i] = r.Float64()
	}

	return out
}

func TestRoots_Integer(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []int64
		want   []float64
	}{
		{"distinct", []int64{6, -7, 0, 1}, []float64{-3, 1, 2}},
		{"double root first", []int64{3, -5, 1, 1}, []float64{1, 1, -3}},
		{"zero root", []int64{0, 0, 1, -1}, []float64{0, 0, 1}},
		{"triple", []int64{-8, 12, -6, 1}, []float64{2, 2, 2}},
		{"eigen 3,6,6", []int64{108, -72, 15, -1}, []float64{6, 6, 3}},
		{"linear", []int64{4, 2}, []float64{-2}},
		{"constant", []int64{5}, []float64{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rootsOf(t, poly.FromInts[Q](tc.coeffs...)))
			assert.Equal(t, tc.want, rootsOf(t, poly.FromInts[F](tc.coeffs...)))
		})
	}
}

func TestRoots_RationalExact(t *testing.T) {
	tests := []struct {
		name string
		p    *poly.Polynomial[Q]
		want []Q
	}{
		// (t - 1/2)(t - 3)
		{"half and three", poly.New(rational.MustNew(3, 2), rational.MustNew(-7, 2), rational.One),
			[]Q{rational.MustNew(1, 2), rational.FromInt(3)}},
		// (t - 1/2)(t - 1/3): non-integer lowest coefficient
		{"sixths", poly.New(rational.MustNew(1, 6), rational.MustNew(-5, 6), rational.One),
			[]Q{rational.MustNew(1, 3), rational.MustNew(1, 2)}},
		// (2t - 1)²(3t + 1) = 12t³ - 8t² - t + 1
		{"double half", poly.FromInts[Q](1, -1, -8, 12),
			[]Q{rational.MustNew(1, 2), rational.MustNew(1, 2), rational.MustNew(-1, 3)}},
		// t(t - 2/7)
		{"zero and fraction", poly.New(rational.Zero, rational.MustNew(-2, 7), rational.One),
			[]Q{rational.Zero, rational.MustNew(2, 7)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			roots, err := poly.Roots(tc.p, poly.WithLogger(l))
			require.NoError(t, err)
			require.Len(t, roots, len(tc.want))
			for i := range tc.want {
				assert.Truef(t, roots[i].Equal(tc.want[i]), "root %d: want %s, got %s", i, tc.want[i], roots[i])
			}
			assert.NotContains(t, buf.String(), "msg=scan", "rational roots must not need the float scan")
		})
	}
}

func TestRoots_Irrational(t *testing.T) {
	got := rootsOf(t, poly.FromInts[F](-2, 0, 1))
	require.Len(t, got, 2)
	assert.InDelta(t, -1.41421, got[0], 1e-3)
	assert.InDelta(t, 1.41421, got[1], 1e-3)

	for _, r := range got {
		assert.InDelta(t, 0, poly.FromInts[F](-2, 0, 1).EvalFloat(r), 1e-3)
	}
}

func TestRoots_Errors(t *testing.T) {
	_, err := poly.Roots(poly.FromInts[Q](1, 0, 1))
	require.ErrorIs(t, err, poly.ErrComplexRoots)

	_, err = poly.Roots(poly.New[Q]())
	require.ErrorIs(t, err, poly.ErrZeroPolynomial)

	// (t - 1)(t² + 1): one real root only.
	_, err = poly.Roots(poly.FromInts[Q](-1, 1, -1, 1))
	require.ErrorIs(t, err, poly.ErrComplexRoots)
}

func TestRoots_Options(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	got, err := poly.Roots(poly.FromInts[F](-2, 0, 1), poly.WithScanStep(1e-3), poly.WithLogger(l))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, 1.41421, got[1].Float64(), 1e-3)
	assert.Contains(t, buf.String(), "msg=scan")
	assert.Contains(t, buf.String(), "scanned root")

	assert.Panics(t, func() { poly.WithScanStep(0) })
	assert.Panics(t, func() { poly.WithScanStep(1) })
	assert.Panics(t, func() { poly.WithMultiplicityTolerance(-1) })
	assert.Panics(t, func() { poly.WithLogger(nil) })
	assert.NotPanics(t, func() { poly.WithMultiplicityTolerance(0) })
}
