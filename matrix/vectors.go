// SPDX-License-Identifier: MIT

// Package matrix - one-dimensional views.
// RowVector and ColumnVector expose a fixed row or column of a base matrix;
// SliceVector adapts a plain []T. All are bounds-checked and allocation-free.

package matrix

import "fmt"

const (
	ctxRow   = "Row"
	ctxCol   = "Col"
	ctxSlice = "SliceVector"
)

// RowVector is a non-owning view of row i of a base matrix.
type RowVector[T Ring] struct {
	base Matrix[T]
	i    int
}

// ColumnVector is a non-owning view of column j of a base matrix.
type ColumnVector[T Ring] struct {
	base Matrix[T]
	j    int
}

// SliceVector is a []T satisfying Vector[T]. Mutations write into the slice.
type SliceVector[T Ring] []T

var (
	_ Vector[float64] = (*RowVector[float64])(nil)
	_ Vector[float64] = (*ColumnVector[float64])(nil)
	_ Vector[float64] = SliceVector[float64](nil)
)

// Row returns a view of row i of m, or ErrIndexOutOfBounds when i is not a
// valid row.
// Complexity: O(1).
func Row[T Ring](m Matrix[T], i int) (*RowVector[T], error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", ctxRow, ErrNilMatrix)
	}
	if i < 0 || i >= m.Rows() {
		return nil, fmt.Errorf("%s(%d) of %dx%d: %w", ctxRow, i, m.Rows(), m.Cols(), ErrIndexOutOfBounds)
	}

	return &RowVector[T]{base: m, i: i}, nil
}

// Col returns a view of column j of m, or ErrIndexOutOfBounds when j is not a
// valid column.
// Complexity: O(1).
func Col[T Ring](m Matrix[T], j int) (*ColumnVector[T], error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", ctxCol, ErrNilMatrix)
	}
	if j < 0 || j >= m.Cols() {
		return nil, fmt.Errorf("%s(%d) of %dx%d: %w", ctxCol, j, m.Rows(), m.Cols(), ErrIndexOutOfBounds)
	}

	return &ColumnVector[T]{base: m, j: j}, nil
}

// Len returns base.Cols().
func (v *RowVector[T]) Len() int { return v.base.Cols() }

// At returns base(i, k).
func (v *RowVector[T]) At(k int) (T, error) { return v.base.At(v.i, k) }

// Set writes base(i, k).
func (v *RowVector[T]) Set(k int, x T) error { return v.base.Set(v.i, k, x) }

// Len returns base.Rows().
func (v *ColumnVector[T]) Len() int { return v.base.Rows() }

// At returns base(k, j).
func (v *ColumnVector[T]) At(k int) (T, error) { return v.base.At(k, v.j) }

// Set writes base(k, j).
func (v *ColumnVector[T]) Set(k int, x T) error { return v.base.Set(k, v.j, x) }

// Len returns len(s).
func (s SliceVector[T]) Len() int { return len(s) }

// At returns s[k] or ErrIndexOutOfBounds.
func (s SliceVector[T]) At(k int) (T, error) {
	if k < 0 || k >= len(s) {
		return 0, fmt.Errorf("%s.At(%d): %w", ctxSlice, k, ErrIndexOutOfBounds)
	}

	return s[k], nil
}

// Set writes s[k] or returns ErrIndexOutOfBounds.
func (s SliceVector[T]) Set(k int, x T) error {
	if k < 0 || k >= len(s) {
		return fmt.Errorf("%s.Set(%d): %w", ctxSlice, k, ErrIndexOutOfBounds)
	}
	s[k] = x

	return nil
}
