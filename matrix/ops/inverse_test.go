// SPDX-License-Identifier: MIT
package ops_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/densela/matrix"
	"github.com/katalvlaran/densela/matrix/ops"
)

func TestForwardBackSubst(t *testing.T) {
	_, l := classic(t)
	// L·y = b with y = [1, 2, 3]
	b := matrix.SliceVector[float64]{2, 8, -8 + 10 + 9}
	require.NoError(t, ops.ForwardSubst[float64](l, b))
	require.Equal(t, []float64{1, 2, 3}, []float64(b))

	// Lᵗ·x = y with x = [1, 1, 1]: Lᵗ rows sum to 0, 6, 3
	y := matrix.SliceVector[float64]{0, 6, 3}
	require.NoError(t, ops.BackSubstTransposed[float64](l, y))
	require.Equal(t, []float64{1, 1, 1}, []float64(y))

	// only the lower triangle is read
	dirty := l.Clone()
	require.NoError(t, dirty.Set(0, 2, 1e6))
	y = matrix.SliceVector[float64]{0, 6, 3}
	require.NoError(t, ops.BackSubstTransposed[float64](dirty, y))
	require.Equal(t, []float64{1, 1, 1}, []float64(y))
}

func TestSubstErrors(t *testing.T) {
	singular := mustFrom(t, 2, 2, 1, 0, 1, 0)
	require.ErrorIs(t, ops.ForwardSubst[float64](singular, matrix.SliceVector[float64]{1, 1}), matrix.ErrSingular)
	require.ErrorIs(t, ops.BackSubstTransposed[float64](singular, matrix.SliceVector[float64]{1, 1}), matrix.ErrSingular)
	require.ErrorIs(t, ops.ForwardSubst[float64](singular, matrix.SliceVector[float64]{1}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, ops.ForwardSubst[float64](singular, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, ops.SolvePanel[float64](singular, mustFrom(t, 1, 3, 1, 2, 3)), matrix.ErrDimensionMismatch)
}

func TestSolvePanel(t *testing.T) {
	_, l := classic(t)
	l11 := matrix.MustSub[float64](l, 0, 0, 2, 2)
	// rows of L21·L11ᵗ for L21 = [[1, 2], [-3, 0]]
	a21 := mustFrom(t, 2, 2,
		2, 6+2,
		-6, -18)
	require.NoError(t, ops.SolvePanel[float64](l11, a21))
	require.Equal(t, []float64{1, 2, -3, 0}, a21.RawData())
}

func TestInverseIdentityProduct(t *testing.T) {
	for _, n := range []int{1, 3, 16, 33} {
		_, a := randSPD(t, n, int64(100+n))
		inv, err := ops.Inverse[float64](a)
		require.NoError(t, err)

		prod, err := ops.Mul[float64](inv, a)
		require.NoError(t, err)
		id, err := matrix.Identity[float64](n)
		require.NoError(t, err)
		requireCloseTol(t, id, prod, 1e-9, 1e-9)
	}
}

func TestInverseDoesNotModifyInput(t *testing.T) {
	a, _ := classic(t)
	before := append([]float64(nil), a.RawData()...)
	_, err := ops.Inverse[float64](a)
	require.NoError(t, err)
	require.Equal(t, before, a.RawData())
}

func TestInverseAgainstGonum(t *testing.T) {
	const n = 20
	_, a := randSPD(t, n, 5)
	var ref mat.Dense
	require.NoError(t, ref.Inverse(mat.NewDense(n, n, a.RawData())))
	want := mustFrom(t, n, n, ref.RawMatrix().Data...)

	got, err := ops.Inverse[float64](a)
	require.NoError(t, err)
	requireClose(t, want, got)

	viaLU, err := ops.InverseLU[float64](a)
	require.NoError(t, err)
	requireClose(t, want, viaLU)
}

func TestInverseErrors(t *testing.T) {
	_, err := ops.Inverse[float64](mustFrom(t, 1, 2, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = ops.Inverse[float64](mustFrom(t, 2, 2, 0, 1, 1, 0)) // symmetric, indefinite
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)
	require.ErrorIs(t, ops.InverseColumns[float64](MustIdentity(t, 2), MustIdentity(t, 2), 1, 3), matrix.ErrIndexOutOfBounds)
}

func TestLU(t *testing.T) {
	// needs a row swap at the first step
	a := mustFrom(t, 3, 3,
		0, 2, 1,
		1, 1, 1,
		2, 1, 0)
	l, u, perm, err := ops.LU[float64](a)
	require.NoError(t, err)
	require.Equal(t, []int{2, 0, 1}, perm)

	for i := 0; i < 3; i++ {
		require.Equal(t, 1.0, at(t, l, i, i))
		for j := i + 1; j < 3; j++ {
			require.Zero(t, at(t, l, i, j))
			require.Zero(t, at(t, u, j, i))
		}
	}

	// L·U reproduces the permuted rows of A
	lu, err := ops.Mul[float64](l, u)
	require.NoError(t, err)
	for i, src := range perm {
		for j := 0; j < 3; j++ {
			require.InDelta(t, at(t, a, src, j), at(t, lu, i, j), 1e-15)
		}
	}
}

func TestInverseLUNonSPD(t *testing.T) {
	a := mustFrom(t, 3, 3,
		0, 2, 1,
		1, 1, 1,
		2, 1, 0) // neither symmetric nor definite
	_, err := ops.Inverse[float64](a)
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)

	inv, err := ops.InverseLU[float64](a)
	require.NoError(t, err)
	prod, err := ops.Mul[float64](a, inv)
	require.NoError(t, err)
	requireClose(t, MustIdentity(t, 3), prod)

	_, err = ops.InverseLU[float64](mustFrom(t, 2, 2, 1, 2, 2, 4))
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, _, _, err = ops.LU[float64](mustFrom(t, 2, 3, 1, 2, 3, 4, 5, 6))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func MustIdentity(tb testing.TB, n int) *matrix.Dense[float64] {
	tb.Helper()
	id, err := matrix.Identity[float64](n)
	require.NoError(tb, err)

	return id
}
