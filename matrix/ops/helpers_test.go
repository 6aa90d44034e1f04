// SPDX-License-Identifier: MIT
// Package ops_test: shared fixtures for the kernel tests.

package ops_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
	"github.com/katalvlaran/densela/matrix/ops"
)

// hide masks the concrete type so kernels take the At/Set fallback.
type hide struct{ matrix.Matrix[float64] }

func mustFrom(tb testing.TB, r, c int, data ...float64) *matrix.Dense[float64] {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(tb, err)

	return m
}

func randDense(tb testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	m, err := matrix.RandDense[float64](r, c, rand.New(rand.NewSource(seed)))
	require.NoError(tb, err)

	return m
}

// randSPD returns a random well-conditioned factor L and A = L·Lᵗ.
func randSPD(tb testing.TB, n int, seed int64) (l, a *matrix.Dense[float64]) {
	tb.Helper()
	l, err := matrix.RandLowerTriangular[float64](n, rand.New(rand.NewSource(seed)))
	require.NoError(tb, err)
	a, err = ops.Mul[float64](l, matrix.NewTranspose[float64](l))
	require.NoError(tb, err)

	return l, a
}

// requireClose asserts element-wise agreement within DefaultRelTol/DefaultAbsTol.
func requireClose(tb testing.TB, want, got matrix.Matrix[float64]) {
	tb.Helper()
	requireCloseTol(tb, want, got, matrix.DefaultRelTol, matrix.DefaultAbsTol)
}

func requireCloseTol(tb testing.TB, want, got matrix.Matrix[float64], rtol, atol float64) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, rtol, atol)
	require.NoError(tb, err)
	if !ok {
		diff, err := ops.Sub(got, want)
		require.NoError(tb, err)
		worst, err := ops.MaxAbs[float64](diff)
		require.NoError(tb, err)
		require.Failf(tb, "matrices differ", "max |got-want| = %g", worst)
	}
}

// lower copies the lower triangle of m, zeroing the rest.
func lower(tb testing.TB, m matrix.Matrix[float64]) *matrix.Dense[float64] {
	tb.Helper()
	out, err := matrix.Create(m.Rows(), m.Cols(), func(i, j int) float64 {
		if j > i {
			return 0
		}
		v, _ := m.At(i, j)
		return v
	})
	require.NoError(tb, err)

	return out
}

func at(tb testing.TB, m matrix.Matrix[float64], i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}
