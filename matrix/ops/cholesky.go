// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/densela/matrix"
)

// CholeskyInPlace overwrites the lower triangle (diagonal included) of the
// symmetric positive-definite matrix a with L such that A = L·Lᵗ.
// Only the lower triangle of a is read; the strict upper triangle is left as it
// was. a may be a view: FactorBlocked calls it on the leading diagonal block.
//
// Column-by-column (left-looking) scheme, for k = 0..n-1:
//
//	L[k,k] = sqrt(A[k,k] - Σ_{p<k} L[k,p]²)
//	L[i,k] = (A[i,k] - Σ_{p<k} L[i,p]·L[k,p]) / L[k,k]   for i > k
//
// Errors: ErrNilMatrix; ErrDimensionMismatch if a is not square;
// ErrNotPositiveDefinite when a radicand is not strictly positive (or NaN).
// On error the lower triangle is partially overwritten.
// Complexity: O(n³/3) time, O(1) memory.
func CholeskyInPlace[T matrix.Field](a matrix.Matrix[T]) error {
	if err := matrix.ValidateSquare(a); err != nil {
		return opErrorf(opCholesky, err)
	}
	n := a.Rows()

	if l, ok := matrix.LayoutOf(a); ok {
		return choleskyLayout(l, n)
	}

	var (
		i, k, p   int
		sum, x, y T
		diag      T
		err       error
	)
	for k = 0; k < n; k++ {
		if sum, err = a.At(k, k); err != nil {
			return opErrorf(opCholesky, err)
		}
		for p = 0; p < k; p++ {
			if x, err = a.At(k, p); err != nil {
				return opErrorf(opCholesky, err)
			}
			sum -= x * x
		}
		if !(sum > 0) {
			return opErrorf(opCholesky, fmt.Errorf("pivot %d = %v: %w", k, sum, matrix.ErrNotPositiveDefinite))
		}
		diag = matrix.Sqrt(sum)
		if err = a.Set(k, k, diag); err != nil {
			return opErrorf(opCholesky, err)
		}
		for i = k + 1; i < n; i++ {
			if sum, err = a.At(i, k); err != nil {
				return opErrorf(opCholesky, err)
			}
			for p = 0; p < k; p++ {
				if x, err = a.At(i, p); err != nil {
					return opErrorf(opCholesky, err)
				}
				if y, err = a.At(k, p); err != nil {
					return opErrorf(opCholesky, err)
				}
				sum -= x * y
			}
			if err = a.Set(i, k, sum/diag); err != nil {
				return opErrorf(opCholesky, err)
			}
		}
	}

	return nil
}

// choleskyLayout is CholeskyInPlace over a flat buffer, same arithmetic order.
func choleskyLayout[T matrix.Field](l matrix.Layout[T], n int) error {
	var (
		i, k, p    int
		sum, diag  T
		rowI, rowK int
	)
	for k = 0; k < n; k++ {
		rowK = l.Offset + k*l.RowStride
		sum = l.Data[rowK+k*l.ColStride]
		for p = 0; p < k; p++ {
			x := l.Data[rowK+p*l.ColStride]
			sum -= x * x
		}
		if !(sum > 0) {
			return opErrorf(opCholesky, fmt.Errorf("pivot %d = %v: %w", k, sum, matrix.ErrNotPositiveDefinite))
		}
		diag = matrix.Sqrt(sum)
		l.Data[rowK+k*l.ColStride] = diag
		for i = k + 1; i < n; i++ {
			rowI = l.Offset + i*l.RowStride
			sum = l.Data[rowI+k*l.ColStride]
			for p = 0; p < k; p++ {
				sum -= l.Data[rowI+p*l.ColStride] * l.Data[rowK+p*l.ColStride]
			}
			l.Data[rowI+k*l.ColStride] = sum / diag
		}
	}

	return nil
}

// ZeroUpper clears the strict upper triangle of a square matrix, turning the
// in-place factor left by FactorBlocked into L. Package par shares it.
func ZeroUpper[T matrix.Field](a matrix.Matrix[T]) error {
	if err := matrix.ValidateSquare(a); err != nil {
		return opErrorf(opCholeskyBlocked, err)
	}
	n := a.Rows()
	if l, ok := matrix.LayoutOf(a); ok {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				l.Data[l.Index(i, j)] = 0
			}
		}
		return nil
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := a.Set(i, j, 0); err != nil {
				return err
			}
		}
	}

	return nil
}
