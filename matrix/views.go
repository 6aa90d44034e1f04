// SPDX-License-Identifier: MIT

// Package matrix - zero-copy matrix views.
//
// Purpose:
//   - Transpose and SubMatrix satisfy Matrix[T] purely through index remapping.
//   - No storage of their own: writes go through to the base (shared storage).
//   - Sub validates offset+extent against the base eagerly, so an invalid window
//     is rejected at construction rather than at the first out-of-range access.
//
// Complexity quicksheet:
//   - NewTranspose/Sub: O(1); At/Set: O(1) plus the base's cost.

package matrix

import "fmt"

const (
	ctxSub       = "Sub"
	ctxTranspose = "Transpose"
)

// Transpose is a non-owning view that swaps the roles of rows and columns.
// At(i,j) reads base.At(j,i); Set(i,j,v) writes base.Set(j,i,v).
type Transpose[T Ring] struct {
	base Matrix[T]
}

var _ Matrix[float64] = (*Transpose[float64])(nil)

// NewTranspose wraps m in a transpose view. A transpose of a transpose is not
// collapsed; use Base to unwrap.
func NewTranspose[T Ring](m Matrix[T]) *Transpose[T] {
	return &Transpose[T]{base: m}
}

// Base returns the wrapped matrix.
func (t *Transpose[T]) Base() Matrix[T] { return t.base }

// Rows returns base.Cols().
func (t *Transpose[T]) Rows() int { return t.base.Cols() }

// Cols returns base.Rows().
func (t *Transpose[T]) Cols() int { return t.base.Rows() }

// At reads element (i,j) of the transposed view.
func (t *Transpose[T]) At(i, j int) (T, error) {
	v, err := t.base.At(j, i)
	if err != nil {
		return 0, fmt.Errorf("%s.At(%d,%d): %w", ctxTranspose, i, j, err)
	}

	return v, nil
}

// Set writes element (i,j) of the transposed view into base(j,i).
func (t *Transpose[T]) Set(i, j int, v T) error {
	if err := t.base.Set(j, i, v); err != nil {
		return fmt.Errorf("%s.Set(%d,%d): %w", ctxTranspose, i, j, err)
	}

	return nil
}

// SubMatrix is a non-owning rectangular window [i0:i0+r, j0:j0+c) of a base.
// Construct with Sub; the zero value is not usable.
type SubMatrix[T Ring] struct {
	base   Matrix[T] // underlying storage owner (never itself a *SubMatrix)
	i0, j0 int       // top-left offset in base
	r, c   int       // view height and width
}

var _ Matrix[float64] = (*SubMatrix[float64])(nil)

// Sub creates a no-copy window of m starting at (i0, j0) with extent rows×cols.
// MAIN DESCRIPTION:
//   - Lightweight sub-block referencing the base (shared storage).
//
// Implementation:
//   - Stage 1: validate non-negative offsets/extents and i0+rows <= m.Rows(),
//     j0+cols <= m.Cols(); else ErrIndexOutOfBounds.
//   - Stage 2: when m is itself a *SubMatrix, re-anchor on its base so view
//     chains never grow (offsets add).
//
// Behavior highlights:
//   - Zero-area windows are legal (rows==0 or cols==0).
//   - Writes via the view mutate the base in place.
//
// Errors:
//   - ErrNilMatrix for a nil base, ErrIndexOutOfBounds for an invalid window.
//
// Complexity:
//   - Time O(1), Space O(1).
func Sub[T Ring](m Matrix[T], i0, j0, rows, cols int) (*SubMatrix[T], error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", ctxSub, ErrNilMatrix)
	}
	if i0 < 0 || j0 < 0 || rows < 0 || cols < 0 || i0+rows > m.Rows() || j0+cols > m.Cols() {
		return nil, fmt.Errorf("%s(%d,%d,%d,%d) of %dx%d: %w",
			ctxSub, i0, j0, rows, cols, m.Rows(), m.Cols(), ErrIndexOutOfBounds)
	}
	if s, ok := m.(*SubMatrix[T]); ok {
		return &SubMatrix[T]{base: s.base, i0: s.i0 + i0, j0: s.j0 + j0, r: rows, c: cols}, nil
	}

	return &SubMatrix[T]{base: m, i0: i0, j0: j0, r: rows, c: cols}, nil
}

// MustSub is Sub for windows the caller has already proven valid (kernels
// computing tiles from their own loop bounds). It panics on error.
func MustSub[T Ring](m Matrix[T], i0, j0, rows, cols int) *SubMatrix[T] {
	s, err := Sub(m, i0, j0, rows, cols)
	if err != nil {
		panic(err)
	}

	return s
}

// Rows returns the number of rows in the view.
func (s *SubMatrix[T]) Rows() int { return s.r }

// Cols returns the number of columns in the view.
func (s *SubMatrix[T]) Cols() int { return s.c }

// Offset returns the top-left position of the view in its base.
func (s *SubMatrix[T]) Offset() (i0, j0 int) { return s.i0, s.j0 }

// Base returns the matrix the view reads from.
func (s *SubMatrix[T]) Base() Matrix[T] { return s.base }

// At reads element (i,j) in the view or returns ErrIndexOutOfBounds.
func (s *SubMatrix[T]) At(i, j int) (T, error) {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return 0, fmt.Errorf("%s.At(%d,%d): %w", ctxSub, i, j, ErrIndexOutOfBounds)
	}

	return s.base.At(i+s.i0, j+s.j0)
}

// Set writes element (i,j) in the view through to the base.
func (s *SubMatrix[T]) Set(i, j int, v T) error {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return fmt.Errorf("%s.Set(%d,%d): %w", ctxSub, i, j, ErrIndexOutOfBounds)
	}

	return s.base.Set(i+s.i0, j+s.j0, v)
}
