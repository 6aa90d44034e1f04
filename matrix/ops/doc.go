// Package ops provides the linear-algebra kernels for the densela/matrix package:
// dot product, naive and cache-blocked multiplication, materialized transpose,
// in-place and blocked Cholesky factorization, triangular solves, and inversion
// (Cholesky-based for SPD inputs, LU with partial pivoting for general ones).
//
// Every kernel accepts any matrix.Matrix (storage or view). Blocked kernels are
// built from the sequential ones applied to sub-block views; package par
// reuses the same tile kernels from concurrent tasks.
//
// Errors are the matrix sentinels wrapped with an operation tag, e.g.
// "Mul: ValidateMulCompatible(2x3, 2x3): matrix: dimension mismatch".
package ops
