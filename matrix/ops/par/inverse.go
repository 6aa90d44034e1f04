// SPDX-License-Identifier: MIT

package par

import (
	"fmt"

	"github.com/katalvlaran/densela/matrix"
	"github.com/katalvlaran/densela/matrix/ops"
)

// Inverse returns A⁻¹ for an SPD matrix a. A is factored once with
// CholeskyBlocked; the identity's columns are then split into one band per
// worker and each task solves its band with ops.InverseColumns against the
// shared, read-only L. Tasks write disjoint columns of the result and own
// their scratch.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNotPositiveDefinite,
// ErrSingular, or the parent context's error.
func Inverse[T matrix.Field](a matrix.Matrix[T], opts ...Option) (*matrix.Dense[T], error) {
	l, err := CholeskyBlocked(a, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInverse, err)
	}
	o := gatherOptions(opts...)
	n := l.Rows()
	inv, err := matrix.NewDense[T](n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInverse, err)
	}

	bands := ops.Bands(n, o.workers)
	tasks := make([]task, 0, len(bands))
	for _, band := range bands {
		tasks = append(tasks, func() error {
			return ops.InverseColumns[T](l, inv, band[0], band[1])
		})
	}
	if err = run(o, tasks); err != nil {
		return nil, fmt.Errorf("%s: %w", opInverse, err)
	}

	return inv, nil
}
