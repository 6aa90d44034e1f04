// SPDX-License-Identifier: MIT

package par

import (
	"fmt"

	"github.com/katalvlaran/densela/matrix"
	"github.com/katalvlaran/densela/matrix/ops"
)

// Mul computes C = A × B with one task per output row band.
// Implementation:
//
//	Stage 1 (Validate): A,B non-nil and A.Cols == B.Rows.
//	Stage 2 (Partition): C is cut into row bands of height
//	min(nb, ceil(rows/workers)), so every worker has at least one band.
//	Stage 3 (Execute): band [r0,r1) computes Sub(C,band) = Sub(A,band) × B
//	with ops.MulBlockedInto. A and B are only read; bands are disjoint.
//
// A product with fewer than two bands runs inline.
// Result agrees with ops.Mul within rounding. Errors are those of ops.Mul,
// including ErrInvalidDimensions for an empty product.
func Mul[T matrix.Ring](a, b matrix.Matrix[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opMul, err)
	}
	o := gatherOptions(opts...)
	rows := a.Rows()
	c, err := matrix.NewDense[T](rows, b.Cols())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMul, err)
	}

	height := min(o.blockSize, (rows+o.workers-1)/o.workers)
	bands := rowBands(rows, height)
	if len(bands) < 2 {
		if err = ops.MulBlockedInto[T](c, a, b, o.blockSize); err != nil {
			return nil, fmt.Errorf("%s: %w", opMul, err)
		}
		return c, nil
	}

	tasks := make([]task, 0, len(bands))
	for _, band := range bands {
		tasks = append(tasks, func() error {
			h := band[1] - band[0]
			dst, err := matrix.Sub[T](c, band[0], 0, h, c.Cols())
			if err != nil {
				return err
			}
			src, err := matrix.Sub(a, band[0], 0, h, a.Cols())
			if err != nil {
				return err
			}
			return ops.MulBlockedInto[T](dst, src, b, o.blockSize)
		})
	}
	if err = run(o, tasks); err != nil {
		return nil, fmt.Errorf("%s: %w", opMul, err)
	}

	return c, nil
}

// rowBands cuts [0, n) into consecutive ranges of the given height; the last
// one may be shorter.
func rowBands(n, height int) [][2]int {
	height = max(1, height)
	out := make([][2]int, 0, (n+height-1)/height)
	for r0 := 0; r0 < n; r0 += height {
		out = append(out, [2]int{r0, min(r0+height, n)})
	}

	return out
}
