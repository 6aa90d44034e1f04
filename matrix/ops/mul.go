package ops

import (
	"fmt"

	"github.com/katalvlaran/densela/matrix"
)

// Mul performs standard matrix multiplication C = A × B into a new Dense.
// Implementation:
//
//	Stage 1 (Validate): A,B non-nil and A.Cols == B.Rows.
//	Stage 2 (Prepare): allocate C (A.Rows × B.Cols).
//	Stage 3 (Execute): C[i,j] = Dot(Row(A,i), Col(B,j)); when both operands
//	resolve to a flat layout the same sum runs over the shared buffers.
//
// Any matrix-like operand is accepted: passing matrix.NewTranspose(L) multiplies
// by Lᵗ without materializing it.
// Errors: ErrNilMatrix, ErrDimensionMismatch; ErrInvalidDimensions when the
// product itself would be empty (A has no rows or B no columns), since a Dense
// is never zero-sized. A zero inner dimension is fine and yields zeros.
// Complexity: O(r*n*c) time, O(1) memory beyond C.
func Mul[T matrix.Ring](a, b matrix.Matrix[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	c, err := matrix.NewDense[T](a.Rows(), b.Cols())
	if err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err = mulAcc(c, a, b, matrix.One[T]()); err != nil {
		return nil, opErrorf(opMul, err)
	}

	return c, nil
}

// MulAcc accumulates dst += alpha · A × B in place. dst may be any writable
// matrix-like value, typically a tile view of a larger result; it must be
// A.Rows × B.Cols. It is the tile kernel of MulBlocked and the Schur update.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*n*c) time, O(c) memory for the column views.
func MulAcc[T matrix.Ring](dst, a, b matrix.Matrix[T], alpha T) error {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return opErrorf(opMulAcc, err)
	}
	if err := matrix.ValidateNotNil(dst); err != nil {
		return opErrorf(opMulAcc, err)
	}
	if dst.Rows() != a.Rows() || dst.Cols() != b.Cols() {
		return opErrorf(opMulAcc, fmt.Errorf("dst %dx%d for %dx%d product: %w",
			dst.Rows(), dst.Cols(), a.Rows(), b.Cols(), matrix.ErrDimensionMismatch))
	}
	if err := mulAcc(dst, a, b, alpha); err != nil {
		return opErrorf(opMulAcc, err)
	}

	return nil
}

// mulAcc is MulAcc without validation. Callers guarantee conformable shapes.
func mulAcc[T matrix.Ring](dst, a, b matrix.Matrix[T], alpha T) error {
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	if rows == 0 || cols == 0 {
		return nil
	}

	// Fast path: all three operands map onto flat buffers.
	if ld, ok := matrix.LayoutOf(dst); ok {
		if la, okA := matrix.LayoutOf(a); okA {
			if lb, okB := matrix.LayoutOf(b); okB {
				mulAccLayout(ld, la, lb, alpha, rows, inner, cols)
				return nil
			}
		}
	}

	// Fallback: row/column views and Dot, fixed i→j order.
	colViews := make([]*matrix.ColumnVector[T], cols)
	var err error
	for j := 0; j < cols; j++ {
		if colViews[j], err = matrix.Col(b, j); err != nil {
			return err
		}
	}
	var (
		row    *matrix.RowVector[T]
		s, cur T
	)
	for i := 0; i < rows; i++ {
		if row, err = matrix.Row(a, i); err != nil {
			return err
		}
		for j := 0; j < cols; j++ {
			if s, err = Dot[T](row, colViews[j]); err != nil {
				return err
			}
			if cur, err = dst.At(i, j); err != nil {
				return err
			}
			if err = dst.Set(i, j, cur+alpha*s); err != nil {
				return err
			}
		}
	}

	return nil
}

// mulAccLayout is the strided inner kernel: the summation order over k
// matches Dot, so the fast path and the fallback agree bit for bit.
func mulAccLayout[T matrix.Ring](ld, la, lb matrix.Layout[T], alpha T, rows, inner, cols int) {
	var (
		i, j, k    int
		aRow, bCol int
		s          T
	)
	for i = 0; i < rows; i++ {
		aRow = la.Offset + i*la.RowStride
		for j = 0; j < cols; j++ {
			bCol = lb.Offset + j*lb.ColStride
			s = 0
			for k = 0; k < inner; k++ {
				s += la.Data[aRow+k*la.ColStride] * lb.Data[bCol+k*lb.RowStride]
			}
			ld.Data[ld.Index(i, j)] += alpha * s
		}
	}
}
