// SPDX-License-Identifier: MIT
// Package solve_test contains fixture loading and comparison helpers.

package solve_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/rational"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

type (
	Q = rational.Rational
	F = scalar.Float
)

// systemCase is one entry of testdata/systems.yaml.
type systemCase struct {
	Name  string `yaml:"name"`
	A     [][]Q  `yaml:"a"`
	B     []Q    `yaml:"b"`
	Kind  string `yaml:"kind"`
	X     []Q    `yaml:"x"`
	Shift []Q    `yaml:"shift"`
	Basis [][]Q  `yaml:"basis"`
}

func loadSystems(t testing.TB) []systemCase {
	t.Helper()
	raw, err := os.ReadFile("testdata/systems.yaml")
	require.NoError(t, err)
	var cases []systemCase
	require.NoError(t, yaml.Unmarshal(raw, &cases))
	require.NotEmpty(t, cases)

	return cases
}

// convert maps fixture rationals to the element type under test.
func convert[T scalar.Scalar[T]](vals []Q) []T {
	out := make([]T, len(vals))
	for i, v := range vals {
		if q, ok := any(v).(T); ok {
			out[i] = q
		} else {
			out[i] = scalar.FromFloat[T](v.Float64())
		}
	}

	return out
}

func vec[T scalar.Scalar[T]](vals []Q) *vector.Vector[T] { return vector.FromSlice(convert[T](vals)) }

func mat[T scalar.Scalar[T]](t testing.TB, rows [][]Q) *matrix.Dense[T] {
	t.Helper()
	raw := make([][]T, len(rows))
	for i, r := range rows {
		raw[i] = convert[T](r)
	}
	m, err := matrix.FromSlices(raw)
	require.NoError(t, err)

	return m
}

func mustInts[T scalar.Scalar[T]](t testing.TB, rows ...[]int64) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromInts[T](rows)
	require.NoError(t, err)

	return m
}

func requireVecEqual[T scalar.Scalar[T]](t testing.TB, want, got *vector.Vector[T]) {
	t.Helper()
	require.NotNil(t, got)
	require.True(t, want.Equal(got), "want %s, got %s", want, got)
}

func requireVecsEqual[T scalar.Scalar[T]](t testing.TB, want, got []*vector.Vector[T]) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		requireVecEqual(t, want[i], got[i])
	}
}
