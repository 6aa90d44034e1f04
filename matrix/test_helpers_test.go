// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the Dense, view and
//     validator tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-Layout (At/Set) fallback paths.
type hide struct{ matrix.Matrix[float64] }

// MustDense allocates an r×c *Dense[float64] or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense[float64] {
	tb.Helper()
	m, err := matrix.NewDense[float64](r, c)
	require.NoError(tb, err)

	return m
}

// MustFrom builds a Dense from row-major values or fails the test.
func MustFrom(tb testing.TB, r, c int, data ...float64) *matrix.Dense[float64] {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(tb, err)

	return m
}

// Seq fills an r×c Dense with m[i,j] = i*c + j, so every cell is distinct.
func Seq(tb testing.TB, r, c int) *matrix.Dense[float64] {
	tb.Helper()
	m, err := matrix.Create(r, c, func(i, j int) float64 { return float64(i*c + j) })
	require.NoError(tb, err)

	return m
}

// fillDenseRand fills m with values in [-1,1) from a seeded source.
func fillDenseRand(tb testing.TB, m *matrix.Dense[float64], seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(tb, m.Set(i, j, 2*rng.Float64()-1))
		}
	}
}

// At reads (i,j) or fails the test.
func At(tb testing.TB, m matrix.Matrix[float64], i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}
