// SPDX-License-Identifier: MIT

// Package matrix: numeric constraints and the capability interfaces shared by
// storage and views. Errors live in errors.go, options in options.go.
package matrix

import "math"

// Ring is the numeric bound for storage, views and the multiplicative
// kernels: element types with an additive identity, a multiplicative identity,
// addition, subtraction and multiplication. Unsigned types are excluded because
// the blocked kernels accumulate with a negative sign.
type Ring interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Field narrows Ring to types with exact division and square root, required by
// Cholesky factorization, triangular solves and inversion.
type Field interface {
	~float32 | ~float64
}

// Zero returns the additive identity of T.
func Zero[T Ring]() T { return 0 }

// One returns the multiplicative identity of T.
func One[T Ring]() T { return 1 }

// Sqrt returns the square root of x computed in float64 and narrowed back to T.
// Complexity: O(1).
func Sqrt[T Field](x T) T { return T(math.Sqrt(float64(x))) }

// Matrix is a two-dimensional mutable array of T.
// Dense owns its storage; Transpose and SubMatrix remap indices onto a base.
// Every kernel in ops and ops/par is written against this interface only.
//
// Complexity notes: all methods are expected O(1).
type Matrix[T Ring] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds if indices are invalid.
	// Writes through a view mutate the base in place.
	Set(i, j int, v T) error
}

// Vector is one-dimensional indexed access. RowVector and ColumnVector
// implement it over a Matrix; SliceVector over a plain slice.
type Vector[T Ring] interface {
	// Len returns the number of elements.
	Len() int

	// At returns element k or ErrIndexOutOfBounds.
	At(k int) (T, error)

	// Set assigns element k or returns ErrIndexOutOfBounds.
	Set(k int, v T) error
}
