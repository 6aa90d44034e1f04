package ops

import "github.com/katalvlaran/densela/matrix"

// Sub returns a new Dense containing the element-wise difference a - b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): flat loop when both operands resolve to a layout,
// interface loop otherwise.
// Complexity: O(r·c) time and memory.
func Sub[T matrix.Ring](a, b matrix.Matrix[T]) (*matrix.Dense[T], error) {
	return zipWith(opSub, a, b, func(x, y T) T { return x - y })
}

// Add returns a new Dense containing the element-wise sum a + b.
// Complexity: O(r·c) time and memory.
func Add[T matrix.Ring](a, b matrix.Matrix[T]) (*matrix.Dense[T], error) {
	return zipWith(opAdd, a, b, func(x, y T) T { return x + y })
}

// MaxAbs returns max |m[i,j]|, e.g. the residual norm of Sub(L·Lᵗ, A).
func MaxAbs[T matrix.Field](m matrix.Matrix[T]) (T, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, opErrorf(opMaxAbs, err)
	}
	var (
		best, v T
		err     error
	)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, opErrorf(opMaxAbs, err)
			}
			if v = abs(v); v > best || v != v {
				best = v
			}
		}
	}

	return best, nil
}

// zipWith applies f cell by cell over two same-shape operands.
func zipWith[T matrix.Ring](tag string, a, b matrix.Matrix[T], f func(x, y T) T) (*matrix.Dense[T], error) {
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(tag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := matrix.NewDense[T](rows, cols)
	if err != nil {
		return nil, opErrorf(tag, err)
	}
	out := res.RawData()

	if la, okA := matrix.LayoutOf(a); okA {
		if lb, okB := matrix.LayoutOf(b); okB {
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					out[i*cols+j] = f(la.Data[la.Index(i, j)], lb.Data[lb.Index(i, j)])
				}
			}
			return res, nil
		}
	}

	var av, bv T
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, opErrorf(tag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, opErrorf(tag, err)
			}
			out[i*cols+j] = f(av, bv)
		}
	}

	return res, nil
}
