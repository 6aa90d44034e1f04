// SPDX-License-Identifier: MIT

package matrix

import "math/rand"

// RandLowerTriangular returns an n×n lower-triangular matrix whose diagonal is
// drawn from [1, 2) and whose strict lower entries are drawn from
// [-1/n, 1/n). Every row is then strictly diagonally dominant, so L stays well
// conditioned at any n and L·Lᵗ is symmetric positive-definite: the standard
// input for the factorization and inverse kernels.
// Cells are drawn in row-major order (Create's fill order), so the result is
// deterministic for a given rng state.
func RandLowerTriangular[T Field](n int, rng *rand.Rand) (*Dense[T], error) {
	scale := 1 / float64(max(n, 1))
	return Create(n, n, func(i, j int) T {
		switch {
		case j > i:
			return 0
		case i == j:
			return T(1 + rng.Float64())
		default:
			return T((2*rng.Float64() - 1) * scale)
		}
	})
}

// RandDense returns a rows×cols matrix with entries drawn from [-1, 1).
func RandDense[T Field](rows, cols int, rng *rand.Rand) (*Dense[T], error) {
	return Create(rows, cols, func(int, int) T { return T(2*rng.Float64() - 1) })
}
