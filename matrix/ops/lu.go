// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/densela/matrix"
)

// LU performs Doolittle LU decomposition with partial pivoting on a square
// matrix a: P·A = L·U, with L unit lower triangular and U upper triangular.
// perm[i] is the row of a that became row i (P applied as a row gather).
// Returns ErrDimensionMismatch if a is not square and ErrSingular when a
// column has no non-zero pivot.
// Time Complexity: O(n³); Memory: O(n²) for L and U.
func LU[T matrix.Field](a matrix.Matrix[T]) (l, u *matrix.Dense[T], perm []int, err error) {
	// Stage 1: Validate input is square
	if err = matrix.ValidateSquare(a); err != nil {
		return nil, nil, nil, opErrorf(opLU, err)
	}
	n := a.Rows()

	// Stage 2: Work on a copy; it is reduced to U in place
	if u, err = matrix.Clone(a); err != nil {
		return nil, nil, nil, opErrorf(opLU, err)
	}
	if l, err = matrix.Identity[T](n); err != nil {
		return nil, nil, nil, opErrorf(opLU, err)
	}
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	ud, ld := u.RawData(), l.RawData()

	// Stage 3: Eliminate column by column
	var (
		i, j, k, p int
		best, f    T
	)
	for k = 0; k < n; k++ {
		// choose the largest |U[i,k]|, i >= k
		p, best = k, abs(ud[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := abs(ud[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == 0 {
			return nil, nil, nil, opErrorf(opLU, fmt.Errorf("zero pivot in column %d: %w", k, matrix.ErrSingular))
		}
		if p != k {
			swapRows(ud, n, k, p, k, n)
			swapRows(ld, n, k, p, 0, k) // only the computed multipliers move
			perm[k], perm[p] = perm[p], perm[k]
		}
		for i = k + 1; i < n; i++ {
			f = ud[i*n+k] / ud[k*n+k]
			ld[i*n+k] = f
			ud[i*n+k] = 0
			for j = k + 1; j < n; j++ {
				ud[i*n+j] -= f * ud[k*n+j]
			}
		}
	}

	// Stage 4: Finalize and return
	return l, u, perm, nil
}

// InverseLU returns A⁻¹ for any non-singular square a, via LU with partial
// pivoting and one forward/backward substitution pair per basis vector.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
// Complexity: O(n³) time, O(n²) memory.
func InverseLU[T matrix.Field](a matrix.Matrix[T]) (*matrix.Dense[T], error) {
	l, u, perm, err := LU(a)
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}
	n := len(perm)
	inv, err := matrix.NewDense[T](n, n)
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}
	ld, ud, out := l.RawData(), u.RawData(), inv.RawData()
	x := make([]T, n)

	var (
		col, i, k int
		sum       T
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L·y = P·e_col (L has a unit diagonal)
		for i = 0; i < n; i++ {
			sum = 0
			if perm[i] == col {
				sum = 1
			}
			for k = 0; k < i; k++ {
				sum -= ld[i*n+k] * x[k]
			}
			x[i] = sum
		}
		// Backward substitution: U·x = y
		for i = n - 1; i >= 0; i-- {
			sum = x[i]
			for k = i + 1; k < n; k++ {
				sum -= ud[i*n+k] * x[k]
			}
			x[i] = sum / ud[i*n+i]
		}
		for i = 0; i < n; i++ {
			out[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// swapRows exchanges columns [c0, c1) of rows r1 and r2 in a row-major
// buffer with n columns.
func swapRows[T matrix.Ring](data []T, n, r1, r2, c0, c1 int) {
	for j := c0; j < c1; j++ {
		data[r1*n+j], data[r2*n+j] = data[r2*n+j], data[r1*n+j]
	}
}

func abs[T matrix.Field](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
