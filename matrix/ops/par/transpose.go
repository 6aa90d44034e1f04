// SPDX-License-Identifier: MIT

package par

import (
	"fmt"

	"github.com/katalvlaran/densela/matrix"
	"github.com/katalvlaran/densela/matrix/ops"
)

// Transpose returns a materialized Aᵗ. Source rows are split into strips of
// block-size height; strip [r0,r1) fills columns [r0,r1) of the result.
func Transpose[T matrix.Ring](a matrix.Matrix[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opTranspose, err)
	}
	o := gatherOptions(opts...)
	t, err := matrix.NewDense[T](a.Cols(), a.Rows())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTranspose, err)
	}

	strips := rowBands(a.Rows(), o.blockSize)
	tasks := make([]task, 0, len(strips))
	for _, s := range strips {
		tasks = append(tasks, func() error {
			return ops.TransposeRows[T](t, a, s[0], s[1])
		})
	}
	if err = run(o, tasks); err != nil {
		return nil, fmt.Errorf("%s: %w", opTranspose, err)
	}

	return t, nil
}
