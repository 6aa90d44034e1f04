// SPDX-License-Identifier: MIT

package matrix

// Layout describes how a matrix maps (i, j) onto a flat slice:
// element (i, j) lives at Data[Offset + i*RowStride + j*ColStride].
//
// Kernels use it as a fast path: a Dense, a SubMatrix over a Dense and a
// Transpose of either all resolve to a Layout, so tile loops can index the
// shared buffer directly instead of paying an interface call and bounds check
// per element. A Dense with the NaN/Inf policy enabled never resolves, so every
// write to it still goes through Set.
type Layout[T Ring] struct {
	Data      []T
	Offset    int
	RowStride int
	ColStride int
	Rows      int
	Cols      int
}

// Index returns the flat offset of (i, j). No bounds checking.
func (l Layout[T]) Index(i, j int) int { return l.Offset + i*l.RowStride + j*l.ColStride }

// LayoutOf resolves m to a Layout when it is a *Dense or a chain of
// *SubMatrix / *Transpose views ending in a *Dense. ok is false otherwise
// (custom Matrix implementations, validating Dense), and callers fall back to
// At/Set.
// Complexity: O(depth of the view chain).
func LayoutOf[T Ring](m Matrix[T]) (l Layout[T], ok bool) {
	switch v := m.(type) {
	case *Dense[T]:
		if v.validateNaNInf {
			return l, false // keep the numeric policy on every write
		}
		return Layout[T]{Data: v.data, RowStride: v.c, ColStride: 1, Rows: v.r, Cols: v.c}, true
	case *SubMatrix[T]:
		bl, ok := LayoutOf(v.base)
		if !ok {
			return l, false
		}
		return Layout[T]{
			Data:      bl.Data,
			Offset:    bl.Index(v.i0, v.j0),
			RowStride: bl.RowStride,
			ColStride: bl.ColStride,
			Rows:      v.r,
			Cols:      v.c,
		}, true
	case *Transpose[T]:
		bl, ok := LayoutOf(v.base)
		if !ok {
			return l, false
		}
		return Layout[T]{
			Data:      bl.Data,
			Offset:    bl.Offset,
			RowStride: bl.ColStride,
			ColStride: bl.RowStride,
			Rows:      bl.Cols,
			Cols:      bl.Rows,
		}, true
	}

	return l, false
}
