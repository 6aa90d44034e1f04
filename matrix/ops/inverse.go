// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/densela/matrix"
)

// Inverse returns A⁻¹ for a symmetric positive-definite matrix a.
// Blueprint:
//
//	Stage 1 (Validate): a non-nil and square.
//	Stage 2 (Decompose): clone a and factor the clone in place, A = L·Lᵗ.
//	Stage 3 (Execute): for every basis vector e_j solve L·y = e_j, then
//	Lᵗ·x = y; x is column j of A⁻¹.
//
// a itself is never modified. Use InverseLU for general non-singular input.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNotPositiveDefinite.
// Complexity: O(n³) time, O(n²) memory.
func Inverse[T matrix.Field](a matrix.Matrix[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, opErrorf(opInverse, err)
	}
	l, err := matrix.Clone(a)
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}
	if err = CholeskyInPlace[T](l); err != nil {
		return nil, opErrorf(opInverse, err)
	}
	n := a.Rows()
	inv, err := matrix.NewDense[T](n, n)
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}
	if err = InverseColumns[T](l, inv, 0, n); err != nil {
		return nil, err
	}

	return inv, nil
}

// InverseColumns writes columns [j0, j1) of A⁻¹ into dst, given the Cholesky
// factor l of A (only its lower triangle is read). Each call owns its scratch
// vector, and distinct column ranges write disjoint cells of dst, so
// package par runs one call per column band.
// Complexity: O((j1-j0)·n²).
func InverseColumns[T matrix.Field](l, dst matrix.Matrix[T], j0, j1 int) error {
	if err := matrix.ValidateSquare(l); err != nil {
		return opErrorf(opInverse, err)
	}
	if err := matrix.ValidateSameShape(l, dst); err != nil {
		return opErrorf(opInverse, err)
	}
	n := l.Rows()
	if j0 < 0 || j1 > n || j0 > j1 {
		return opErrorf(opInverse, fmt.Errorf("columns [%d,%d) of %d: %w", j0, j1, n, matrix.ErrIndexOutOfBounds))
	}

	x := make(matrix.SliceVector[T], n)
	var err error
	for j := j0; j < j1; j++ {
		clear(x)
		x[j] = 1
		if err = ForwardSubst[T](l, x); err != nil {
			return opErrorf(opInverse, err)
		}
		if err = BackSubstTransposed[T](l, x); err != nil {
			return opErrorf(opInverse, err)
		}
		for i := 0; i < n; i++ {
			if err = dst.Set(i, j, x[i]); err != nil {
				return opErrorf(opInverse, err)
			}
		}
	}

	return nil
}
