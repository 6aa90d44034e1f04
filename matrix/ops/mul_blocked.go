package ops

import (
	"fmt"

	"github.com/katalvlaran/densela/matrix"
)

// MulBlocked computes C = A × B by cache tiling.
// Blueprint:
//
//	Stage 1 (Validate): A,B non-nil and A.Cols == B.Rows.
//	Stage 2 (Prepare): allocate C; resolve the block size nb (WithBlockSize or
//	DefaultBlockSize).
//	Stage 3 (Execute): for every output tile C[ib,jb] and every kb,
//	C[ib,jb] += A[ib,kb] × B[kb,jb] with the naive tile kernel on sub-block views.
//
// Boundary tiles shrink to min(nb, n-i0) so no access leaves the operands.
// The result agrees with Mul within rounding; the summation order differs.
// Errors are those of Mul, including ErrInvalidDimensions for an empty product.
// Complexity: O(r*n*c) time, O(1) memory beyond C.
func MulBlocked[T matrix.Ring](a, b matrix.Matrix[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMulBlocked, err)
	}
	o := Resolve(opts...)
	c, err := matrix.NewDense[T](a.Rows(), b.Cols())
	if err != nil {
		return nil, opErrorf(opMulBlocked, err)
	}
	if err = mulBlockedAcc(c, a, b, o.BlockSize); err != nil {
		return nil, opErrorf(opMulBlocked, err)
	}

	return c, nil
}

// MulBlockedInto overwrites dst with A × B using nb×nb tiles. dst must be
// A.Rows × B.Cols and must not overlap A or B. Package par calls it once per
// output band.
func MulBlockedInto[T matrix.Ring](dst, a, b matrix.Matrix[T], nb int) error {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return opErrorf(opMulBlocked, err)
	}
	if err := matrix.ValidateNotNil(dst); err != nil {
		return opErrorf(opMulBlocked, err)
	}
	if dst.Rows() != a.Rows() || dst.Cols() != b.Cols() {
		return opErrorf(opMulBlocked, fmt.Errorf("dst %dx%d for %dx%d product: %w",
			dst.Rows(), dst.Cols(), a.Rows(), b.Cols(), matrix.ErrDimensionMismatch))
	}
	if nb <= 0 {
		panic(panicBlockSizeInvalid)
	}
	if err := fill(dst, matrix.Zero[T]()); err != nil {
		return opErrorf(opMulBlocked, err)
	}
	if err := mulBlockedAcc(dst, a, b, nb); err != nil {
		return opErrorf(opMulBlocked, err)
	}

	return nil
}

// mulBlockedAcc accumulates dst += A × B tile by tile (ib → jb → kb).
func mulBlockedAcc[T matrix.Ring](dst, a, b matrix.Matrix[T], nb int) error {
	inner := a.Cols()
	one := matrix.One[T]()
	var (
		cTile, aTile, bTile *matrix.SubMatrix[T]
		err                 error
	)
	for _, t := range Tiling(dst.Rows(), dst.Cols(), nb) {
		if cTile, err = matrix.Sub(dst, t.I0, t.J0, t.Rows, t.Cols); err != nil {
			return err
		}
		for k0 := 0; k0 < inner; k0 += nb {
			kb := min(nb, inner-k0)
			if aTile, err = matrix.Sub(a, t.I0, k0, t.Rows, kb); err != nil {
				return err
			}
			if bTile, err = matrix.Sub(b, k0, t.J0, kb, t.Cols); err != nil {
				return err
			}
			if err = mulAcc[T](cTile, aTile, bTile, one); err != nil {
				return err
			}
		}
	}

	return nil
}

// fill writes v into every cell of m.
func fill[T matrix.Ring](m matrix.Matrix[T], v T) error {
	if l, ok := matrix.LayoutOf(m); ok {
		for i := 0; i < l.Rows; i++ {
			for j := 0; j < l.Cols; j++ {
				l.Data[l.Index(i, j)] = v
			}
		}
		return nil
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, v); err != nil {
				return err
			}
		}
	}

	return nil
}
