// SPDX-License-Identifier: MIT

package rational_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linalg/rational"
)

func TestNew_Reduces(t *testing.T) {
	cases := []struct {
		name     string
		num, den int64
		want     string
	}{
		{"already reduced", 3, 7, "3/7"},
		{"common factor", 6, 8, "3/4"},
		{"negative denominator", 4, -6, "-2/3"},
		{"both negative", -4, -6, "2/3"},
		{"integer", 10, 5, "2"},
		{"zero numerator", 0, -9, "0"},
		{"zero over zero", 0, 0, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := rational.New(tc.num, tc.den)
			require.NoError(t, err)
			require.Equal(t, tc.want, r.String())
			require.Positive(t, r.Den())
		})
	}

	_, err := rational.New(1, 0)
	require.ErrorIs(t, err, rational.ErrZeroDenominator)
}

func TestArithmetic(t *testing.T) {
	a := rational.MustNew(3, 7)
	b := rational.MustNew(2, 9)

	require.True(t, a.Add(b).Equal(rational.MustNew(41, 63)))
	require.True(t, a.Sub(b).Equal(rational.MustNew(13, 63)))
	require.True(t, a.Mul(b).Equal(rational.MustNew(2, 21)))
	require.True(t, a.Quo(b).Equal(rational.MustNew(27, 14)))
	require.True(t, a.Neg().Equal(rational.MustNew(-3, 7)))
	require.True(t, a.Neg().Abs().Equal(a))
	require.True(t, a.Sub(a).IsZero())
	require.Equal(t, "0", a.Sub(a).String())
}

func TestZeroValueIsUsable(t *testing.T) {
	var z rational.Rational
	require.True(t, z.IsZero())
	require.True(t, z.Equal(rational.Zero))
	require.Equal(t, int64(1), z.Den())
	require.True(t, z.Add(rational.One).Equal(rational.One))
}

func TestCmp(t *testing.T) {
	third := rational.MustNew(1, 3)
	half := rational.MustNew(1, 2)

	assert.Equal(t, -1, third.Cmp(half))
	assert.Equal(t, 1, half.Cmp(third))
	assert.Equal(t, 0, half.Cmp(rational.MustNew(2, 4)))
	assert.Equal(t, -1, half.Neg().Cmp(third.Neg()))
	assert.Equal(t, -1, half.Neg().Cmp(rational.Zero))
	assert.True(t, third.Less(half))

	// cross products beyond int64 are still ordered correctly
	big1 := rational.MustNew(math.MaxInt64-1, math.MaxInt64)
	big2 := rational.MustNew(math.MaxInt64-2, math.MaxInt64-1)
	assert.Equal(t, 1, big1.Cmp(big2))
}

func TestOverflow_PanicsAndRecovers(t *testing.T) {
	huge := rational.FromInt(math.MaxInt64)

	require.Panics(t, func() { _ = huge.Add(rational.One) })

	sum := func() (r rational.Rational, err error) {
		defer rational.Recover(&err)
		return huge.Mul(rational.FromInt(2)), nil
	}
	_, err := sum()
	require.ErrorIs(t, err, rational.ErrOverflow)

	var oe *rational.OverflowError
	require.True(t, errors.As(err, &oe))
	require.Equal(t, "mul", oe.Op)
}

func TestQuoByZero(t *testing.T) {
	div := func() (r rational.Rational, err error) {
		defer rational.Recover(&err)
		return rational.One.Quo(rational.Zero), nil
	}
	_, err := div()
	require.ErrorIs(t, err, rational.ErrDivisionByZero)
}

func TestRecover_ForeignPanicPropagates(t *testing.T) {
	require.PanicsWithValue(t, "boom", func() {
		var err error
		defer rational.Recover(&err)
		panic("boom")
	})
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want rational.Rational
	}{
		{"3/8", rational.MustNew(3, 8)},
		{" -4/6 ", rational.MustNew(-2, 3)},
		{"17", rational.FromInt(17)},
		{"-5", rational.FromInt(-5)},
		{"0.0625", rational.MustNew(1, 16)},
		{"-1.375", rational.MustNew(-11, 8)},
		{"2.50", rational.MustNew(5, 2)},
		{".5", rational.MustNew(1, 2)},
		{"-.5", rational.MustNew(-1, 2)},
		{"+1.5", rational.MustNew(3, 2)},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := rational.Parse(tc.in)
			require.NoError(t, err)
			require.True(t, got.Equal(tc.want), "got %s want %s", got, tc.want)
		})
	}

	for _, bad := range []string{"", "x", "1/y", "1.2.3", "--1", "--1.5", "+-1.5", "-+1.5"} {
		_, err := rational.Parse(bad)
		require.ErrorIs(t, err, rational.ErrSyntax, "input %q", bad)
	}

	_, err := rational.Parse("1/0")
	require.ErrorIs(t, err, rational.ErrZeroDenominator)
}

func TestFromFloat(t *testing.T) {
	r, err := rational.FromFloat(0.0625, rational.DefaultMaxDenominator)
	require.NoError(t, err)
	require.Equal(t, "1/16", r.String())

	r, err = rational.FromFloat(-2.5, rational.DefaultMaxDenominator)
	require.NoError(t, err)
	require.Equal(t, "-5/2", r.String())

	r, err = rational.FromFloat(0.1, rational.DefaultMaxDenominator)
	require.NoError(t, err)
	require.Equal(t, "1/10", r.String())

	r, err = rational.FromFloat(3.0, 1)
	require.NoError(t, err)
	require.Equal(t, "3", r.String())

	_, err = rational.FromFloat(math.NaN(), 10)
	require.ErrorIs(t, err, rational.ErrOverflow)
	_, err = rational.FromFloat(math.Inf(-1), 10)
	require.ErrorIs(t, err, rational.ErrOverflow)
}

func TestTextAndYAML(t *testing.T) {
	b, err := rational.MustNew(-3, 8).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "-3/8", string(b))

	var r rational.Rational
	require.NoError(t, r.UnmarshalText([]byte("5/10")))
	require.Equal(t, "1/2", r.String())

	var row []rational.Rational
	require.NoError(t, yaml.Unmarshal([]byte(`[1, -0.5, "3/8", 7/2]`), &row))
	require.Len(t, row, 4)
	require.Equal(t, "1", row[0].String())
	require.Equal(t, "-1/2", row[1].String())
	require.Equal(t, "3/8", row[2].String())
	require.Equal(t, "7/2", row[3].String())

	var bad []rational.Rational
	require.Error(t, yaml.Unmarshal([]byte(`[[1, 2]]`), &bad))
}
