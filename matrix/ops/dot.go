package ops

import (
	"fmt"

	"github.com/katalvlaran/densela/matrix"
)

// Operation tags for unified error wrapping.
const (
	opDot             = "Dot"
	opMul             = "Mul"
	opMulAcc          = "MulAcc"
	opMulBlocked      = "MulBlocked"
	opTranspose       = "Transpose"
	opCholesky        = "CholeskyInPlace"
	opCholeskyBlocked = "CholeskyBlocked"
	opSolve           = "Solve"
	opInverse         = "Inverse"
	opLU              = "LU"
	opSub             = "Sub"
	opAdd             = "Add"
	opMaxAbs          = "MaxAbs"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Only call with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dot returns Σ u[k]·v[k] accumulated in T (no widening).
// Returns ErrDimensionMismatch when u.Len() != v.Len().
// Complexity: O(n) time, O(1) memory.
func Dot[T matrix.Ring](u, v matrix.Vector[T]) (T, error) {
	if err := matrix.ValidateVecLen(u, v); err != nil {
		return 0, opErrorf(opDot, err)
	}
	var (
		sum, a, b T
		err       error
	)
	for k := 0; k < u.Len(); k++ {
		if a, err = u.At(k); err != nil {
			return 0, opErrorf(opDot, err)
		}
		if b, err = v.At(k); err != nil {
			return 0, opErrorf(opDot, err)
		}
		sum += a * b
	}

	return sum, nil
}
