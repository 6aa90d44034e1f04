// Package matrix offers a generic dense-matrix abstraction with zero-copy views.
//
// The matrix package provides:
//
//   - Matrix[T] and Vector[T]: the get/set/dimension capability every kernel
//     in matrix/ops and matrix/ops/par is written against.
//   - Dense[T]: row-major owned storage with bounds-checked At/Set.
//   - Views that remap indices without copying: Transpose, SubMatrix (Sub),
//     RowVector (Row), ColumnVector (Col) and SliceVector. Writes through a
//     view mutate the base in place.
//   - Ring and Field numeric bounds, sentinel errors, validators, AllClose,
//     and generators (Identity, RandLowerTriangular) for building inputs.
//
// Sub validates offset+extent against its base when the view is built, so an
// invalid tile never exists long enough to be read.
//
// See matrix/ops for the sequential and blocked kernels, matrix/ops/par for
// their fork/join variants.
package matrix
