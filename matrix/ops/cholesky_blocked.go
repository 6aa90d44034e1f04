// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/densela/matrix"
)

// SchurFunc applies the trailing update A22 -= L21·L21ᵗ to (at least) the
// lower triangle of a22. l21 is the solved panel below the factored block and
// nb is the tile edge in effect. Package par supplies a concurrent one.
type SchurFunc[T matrix.Field] func(a22, l21 matrix.Matrix[T], nb int) error

// CholeskyBlocked returns the lower-triangular factor L of the SPD matrix a
// (A = L·Lᵗ) using right-looking blocked factorization. a is not modified and
// the strict upper triangle of L is zero.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNotPositiveDefinite.
// Complexity: O(n³/3) time, O(n²) memory for the result.
func CholeskyBlocked[T matrix.Field](a matrix.Matrix[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, opErrorf(opCholeskyBlocked, err)
	}
	o := Resolve(opts...)
	l, err := matrix.Clone(a)
	if err != nil {
		return nil, opErrorf(opCholeskyBlocked, err)
	}
	if err = FactorBlocked[T](l, o.BlockSize, SchurUpdate[T]); err != nil {
		return nil, err
	}
	if err = ZeroUpper[T](l); err != nil {
		return nil, opErrorf(opCholeskyBlocked, err)
	}

	return l, nil
}

// FactorBlocked factors a in place, block column by block column:
//
//	Stage 1: a11 = a[0:b, 0:b] is factored by CholeskyInPlace.
//	Stage 2: a21 = a[b:n, 0:b] is overwritten with L21 = A21·L11⁻ᵗ (SolvePanel).
//	Stage 3: schur(a22, L21) updates the trailing block a22 = a[b:n, b:n].
//	Stage 4: recurse on a22.
//
// with b = min(nb, n). A matrix no larger than nb is factored directly.
// Every stage works on views of a; nothing is copied. On return the lower
// triangle holds L; the upper triangle of each diagonal block may hold
// Schur residue and is not part of the result.
func FactorBlocked[T matrix.Field](a matrix.Matrix[T], nb int, schur SchurFunc[T]) error {
	if err := matrix.ValidateSquare(a); err != nil {
		return opErrorf(opCholeskyBlocked, err)
	}
	if nb <= 0 {
		panic(panicBlockSizeInvalid)
	}
	if schur == nil {
		schur = SchurUpdate[T]
	}
	if err := factorBlocked(a, nb, schur); err != nil {
		return opErrorf(opCholeskyBlocked, err)
	}

	return nil
}

// factorBlocked is the recursion of FactorBlocked; errors are returned bare.
func factorBlocked[T matrix.Field](a matrix.Matrix[T], nb int, schur SchurFunc[T]) error {
	n := a.Rows()
	if n <= nb {
		return CholeskyInPlace(a)
	}

	rest := n - nb
	a11, err := matrix.Sub(a, 0, 0, nb, nb)
	if err != nil {
		return err
	}
	a21, err := matrix.Sub(a, nb, 0, rest, nb)
	if err != nil {
		return err
	}
	a22, err := matrix.Sub(a, nb, nb, rest, rest)
	if err != nil {
		return err
	}

	if err = CholeskyInPlace[T](a11); err != nil {
		return err
	}
	if err = SolvePanel[T](a11, a21); err != nil {
		return err
	}
	if err = schur(a22, a21, nb); err != nil {
		return err
	}

	return factorBlocked[T](a22, nb, schur)
}

// SchurUpdate is the sequential SchurFunc: SchurTile over every tile of
// LowerTiling(a22.Rows(), nb).
func SchurUpdate[T matrix.Field](a22, l21 matrix.Matrix[T], nb int) error {
	for _, t := range LowerTiling(a22.Rows(), nb) {
		if err := SchurTile(a22, l21, t); err != nil {
			return err
		}
	}

	return nil
}

// SchurTile applies a22[t] -= L21[t.rows, :] · L21[t.cols, :]ᵗ for one tile.
// Distinct tiles write disjoint cells of a22 and only read l21, so tiles may
// be processed concurrently.
func SchurTile[T matrix.Field](a22, l21 matrix.Matrix[T], t Tile) error {
	if a22.Rows() != l21.Rows() {
		return fmt.Errorf("SchurTile: a22 %dx%d, panel %dx%d: %w",
			a22.Rows(), a22.Cols(), l21.Rows(), l21.Cols(), matrix.ErrDimensionMismatch)
	}
	k := l21.Cols()
	dst, err := matrix.Sub(a22, t.I0, t.J0, t.Rows, t.Cols)
	if err != nil {
		return err
	}
	left, err := matrix.Sub(l21, t.I0, 0, t.Rows, k)
	if err != nil {
		return err
	}
	right, err := matrix.Sub(l21, t.J0, 0, t.Cols, k)
	if err != nil {
		return err
	}

	return MulAcc[T](dst, left, matrix.NewTranspose[T](right), -1)
}
