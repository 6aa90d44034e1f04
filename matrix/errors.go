// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels in matrix, matrix/ops and matrix/ops/par return these sentinels
// (possibly wrapped with an operation tag) and tests match them via errors.Is.
// No kernel panics on user-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Return the
// sentinel directly at the detection site or wrap with fmt.Errorf("ctx: %w", ErrX);
// callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row, column or vector index is outside
	// valid bounds, or that a view was constructed with an offset+extent that
	// exceeds its base. Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Dot on vectors of different length, Mul where a.Cols != b.Rows, or a
	// non-square input to Cholesky/Inverse.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotPositiveDefinite is returned when Cholesky meets a radicand <= 0.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")

	// ErrSingular is returned when a zero pivot is encountered during a
	// triangular solve or LU elimination.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf value was written into a Dense whose
	// numeric policy requires finite values (see WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix or Vector argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

