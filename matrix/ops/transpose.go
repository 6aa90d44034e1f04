package ops

import (
	"fmt"

	"github.com/katalvlaran/densela/matrix"
)

// Transpose returns a new Dense T with T[i,j] = A[j,i].
// Unlike matrix.NewTranspose (a zero-copy view), the result has its own
// contiguous row-major storage, which keeps later blocked work cache-friendly.
// Complexity: O(r*c) time and memory.
func Transpose[T matrix.Ring](a matrix.Matrix[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	t, err := matrix.NewDense[T](a.Cols(), a.Rows())
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	if err = TransposeRows(t, a, 0, a.Rows()); err != nil {
		return nil, err
	}

	return t, nil
}

// TransposeRows copies source rows [r0, r1) of a into columns [r0, r1) of dst
// (dst[j,i] = a[i,j]). dst must be a.Cols × a.Rows. Distinct row ranges write
// disjoint columns of dst, which is what package par relies on.
func TransposeRows[T matrix.Ring](dst, a matrix.Matrix[T], r0, r1 int) error {
	if dst == nil || a == nil {
		return opErrorf(opTranspose, matrix.ErrNilMatrix)
	}
	if dst.Rows() != a.Cols() || dst.Cols() != a.Rows() {
		return opErrorf(opTranspose, fmt.Errorf("dst %dx%d for %dx%d source: %w",
			dst.Rows(), dst.Cols(), a.Rows(), a.Cols(), matrix.ErrDimensionMismatch))
	}
	if r0 < 0 || r1 > a.Rows() || r0 > r1 {
		return opErrorf(opTranspose, fmt.Errorf("rows [%d,%d) of %d: %w", r0, r1, a.Rows(), matrix.ErrIndexOutOfBounds))
	}
	cols := a.Cols()

	if ld, ok := matrix.LayoutOf(dst); ok {
		if la, okA := matrix.LayoutOf(a); okA {
			for i := r0; i < r1; i++ {
				for j := 0; j < cols; j++ {
					ld.Data[ld.Index(j, i)] = la.Data[la.Index(i, j)]
				}
			}
			return nil
		}
	}

	var (
		v   T
		err error
	)
	for i := r0; i < r1; i++ {
		for j := 0; j < cols; j++ {
			if v, err = a.At(i, j); err != nil {
				return opErrorf(opTranspose, err)
			}
			if err = dst.Set(j, i, v); err != nil {
				return opErrorf(opTranspose, err)
			}
		}
	}

	return nil
}
