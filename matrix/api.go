// SPDX-License-Identifier: MIT
// Package matrix - constructors, copies and comparison helpers.
//
// Purpose:
//   - Provide thin, well-documented entry points used by kernels, tests and the
//     benchmark driver (identity, materialized copies, agreement checks).
//   - Keep loops deterministic (fixed i→j order) and access generic through
//     Matrix[T], with *Dense fast paths over the flat buffer.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxClone    = "Clone"
	ctxAllClose = "AllClose"
	ctxIdentity = "Identity"
)

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity[T Ring](n int) (*Dense[T], error) {
	id, err := NewDense[T](n, n)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", ctxIdentity, n, err)
	}
	one := One[T]()
	for i := 0; i < n; i++ {
		id.data[i*n+i] = one
	}

	return id, nil
}

// ZerosLike returns a new zero Dense with the same shape as m.
func ZerosLike[T Ring](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense[T](m.Rows(), m.Cols())
}

// Clone materializes any Matrix (Dense or view) into a new, independent Dense.
// Implementation:
//   - Stage 1: *Dense → Dense.Clone (single copy).
//   - Stage 2: otherwise read every cell via At in i→j order.
//
// Complexity: Time O(r*c), Space O(r*c).
func Clone[T Ring](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxClone, err)
	}
	if d, ok := m.(*Dense[T]); ok {
		return d.Clone(), nil
	}
	out, err := NewDense[T](m.Rows(), m.Cols())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxClone, err)
	}
	var i, j int
	var v T
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxClone, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never compares close. rtol/atol are treated as absolute values.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; ErrNaNInf for non-finite tolerances.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose[T Ring](a, b Matrix[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, fmt.Errorf("%s: %w", ctxAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, fmt.Errorf("%s: %w", ctxAllClose, err)
	}

	// Dense fast-path.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range da.data {
				if !close64(float64(da.data[idx]), float64(db.data[idx]), rtol, atol) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	var av, bv T
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, fmt.Errorf("%s: %w", ctxAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, fmt.Errorf("%s: %w", ctxAllClose, err)
			}
			if !close64(float64(av), float64(bv), rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// close64 reports |x-y| ≤ atol + rtol*|y|; infinities are close only to themselves.
func close64(x, y, rtol, atol float64) bool {
	if x == y {
		return true
	}

	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}

// Format renders any Matrix the way Dense.String does. Unreadable cells
// (which a correctly constructed view never produces) render as "?".
func Format[T Ring](m Matrix[T]) string {
	if m == nil {
		return "<nil>"
	}
	if d, ok := m.(*Dense[T]); ok {
		return d.String()
	}
	var b strings.Builder
	for i := 0; i < m.Rows(); i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.Cols(); j++ {
			if v, err := m.At(i, j); err != nil {
				b.WriteString("?")
			} else {
				b.WriteString(fmt.Sprintf("%v", v))
			}
			if j+1 < m.Cols() {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
