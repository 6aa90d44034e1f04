// SPDX-License-Identifier: MIT

package par

import (
	"fmt"

	"github.com/katalvlaran/densela/matrix"
	"github.com/katalvlaran/densela/matrix/ops"
)

// CholeskyBlocked returns L with A = L·Lᵗ, like ops.CholeskyBlocked, but the
// Schur update of every step runs one task per lower tile of A22. A tile
// reads two row blocks of L21 and writes only itself, so the tasks share no
// written cells. The diagonal block factorization and the panel solve stay
// sequential. a is not modified; the upper triangle of L is zero.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNotPositiveDefinite, or the
// parent context's error.
func CholeskyBlocked[T matrix.Field](a matrix.Matrix[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opCholeskyBlocked, err)
	}
	o := gatherOptions(opts...)
	l, err := matrix.Clone(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCholeskyBlocked, err)
	}
	if err = ops.FactorBlocked[T](l, o.blockSize, schurUpdate[T](o)); err != nil {
		return nil, fmt.Errorf("%s: %w", opCholeskyBlocked, err)
	}
	if err = ops.ZeroUpper[T](l); err != nil {
		return nil, fmt.Errorf("%s: %w", opCholeskyBlocked, err)
	}

	return l, nil
}

// schurUpdate returns an ops.SchurFunc that fans the lower tiles out to run.
func schurUpdate[T matrix.Field](o Options) ops.SchurFunc[T] {
	return func(a22, l21 matrix.Matrix[T], nb int) error {
		tiles := ops.LowerTiling(a22.Rows(), nb)
		if len(tiles) < 2 {
			return ops.SchurUpdate(a22, l21, nb)
		}
		tasks := make([]task, 0, len(tiles))
		for _, t := range tiles {
			tasks = append(tasks, func() error {
				return ops.SchurTile(a22, l21, t)
			})
		}

		return run(o, tasks)
	}
}
