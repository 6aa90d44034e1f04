package ops

import (
	"fmt"

	"github.com/katalvlaran/densela/matrix"
)

// ForwardSubst solves L·y = b in place (b is overwritten with y), reading only
// the lower triangle of l (diagonal included). Entries above the diagonal are
// ignored, so l may be the output of CholeskyInPlace.
// Returns ErrSingular on a zero diagonal entry.
// Complexity: O(n²).
func ForwardSubst[T matrix.Field](l matrix.Matrix[T], b matrix.Vector[T]) error {
	if err := validateSolve(l, b); err != nil {
		return err
	}
	var (
		i, p          int
		sum, lv, y, d T
		err           error
	)
	for i = 0; i < b.Len(); i++ {
		if sum, err = b.At(i); err != nil {
			return opErrorf(opSolve, err)
		}
		for p = 0; p < i; p++ {
			if lv, err = l.At(i, p); err != nil {
				return opErrorf(opSolve, err)
			}
			if y, err = b.At(p); err != nil {
				return opErrorf(opSolve, err)
			}
			sum -= lv * y
		}
		if d, err = l.At(i, i); err != nil {
			return opErrorf(opSolve, err)
		}
		if d == 0 {
			return opErrorf(opSolve, fmt.Errorf("zero pivot at %d: %w", i, matrix.ErrSingular))
		}
		if err = b.Set(i, sum/d); err != nil {
			return opErrorf(opSolve, err)
		}
	}

	return nil
}

// BackSubstTransposed solves Lᵗ·x = y in place (y is overwritten with x),
// where L is lower-triangular. Lᵗ[i,p] is read as L[p,i], so no transpose is
// materialized. Returns ErrSingular on a zero diagonal entry.
// Complexity: O(n²).
func BackSubstTransposed[T matrix.Field](l matrix.Matrix[T], y matrix.Vector[T]) error {
	if err := validateSolve(l, y); err != nil {
		return err
	}
	var (
		i, p          int
		sum, lv, x, d T
		err           error
	)
	n := y.Len()
	for i = n - 1; i >= 0; i-- {
		if sum, err = y.At(i); err != nil {
			return opErrorf(opSolve, err)
		}
		for p = i + 1; p < n; p++ {
			if lv, err = l.At(p, i); err != nil {
				return opErrorf(opSolve, err)
			}
			if x, err = y.At(p); err != nil {
				return opErrorf(opSolve, err)
			}
			sum -= lv * x
		}
		if d, err = l.At(i, i); err != nil {
			return opErrorf(opSolve, err)
		}
		if d == 0 {
			return opErrorf(opSolve, fmt.Errorf("zero pivot at %d: %w", i, matrix.ErrSingular))
		}
		if err = y.Set(i, sum/d); err != nil {
			return opErrorf(opSolve, err)
		}
	}

	return nil
}

// SolvePanel overwrites a21 with L21 such that L21·L11ᵗ = A21, one forward
// substitution per row (row r of L21 solves L11·xᵗ = A21[r,:]ᵗ).
// l11 is the factored leading block; a21 has l11.Rows() columns.
// Complexity: O(r·nb²).
func SolvePanel[T matrix.Field](l11, a21 matrix.Matrix[T]) error {
	if err := matrix.ValidateSquare(l11); err != nil {
		return opErrorf(opSolve, err)
	}
	if err := matrix.ValidateNotNil(a21); err != nil {
		return opErrorf(opSolve, err)
	}
	if a21.Cols() != l11.Rows() {
		return opErrorf(opSolve, fmt.Errorf("panel %dx%d for %dx%d block: %w",
			a21.Rows(), a21.Cols(), l11.Rows(), l11.Cols(), matrix.ErrDimensionMismatch))
	}
	for r := 0; r < a21.Rows(); r++ {
		row, err := matrix.Row(a21, r)
		if err != nil {
			return opErrorf(opSolve, err)
		}
		if err = ForwardSubst[T](l11, row); err != nil {
			return err
		}
	}

	return nil
}

// validateSolve checks a square factor and a right-hand side of matching length.
func validateSolve[T matrix.Field](l matrix.Matrix[T], b matrix.Vector[T]) error {
	if err := matrix.ValidateSquare(l); err != nil {
		return opErrorf(opSolve, err)
	}
	if b == nil {
		return opErrorf(opSolve, matrix.ErrNilMatrix)
	}
	if b.Len() != l.Rows() {
		return opErrorf(opSolve, fmt.Errorf("rhs length %d for %dx%d factor: %w",
			b.Len(), l.Rows(), l.Cols(), matrix.ErrDimensionMismatch))
	}

	return nil
}
