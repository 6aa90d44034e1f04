// Package densela is a small dense linear-algebra library built around one
// generic capability interface and zero-copy views.
//
// Layout:
//
//	matrix/         - Matrix[T]/Vector[T], Dense storage, Transpose/Sub/Row/Col views,
//	                  sentinel errors, validators, AllClose, generators
//	matrix/ops/     - Dot, Mul, MulBlocked, Transpose, Cholesky (in place, blocked),
//	                  triangular solves, Inverse (Cholesky), LU and InverseLU
//	matrix/ops/par/ - fork/join variants of Mul, Transpose, CholeskyBlocked, Inverse
//	cmd/densebench/ - times every kernel on one N×N SPD input
//
// Quick example:
//
//	rng := rand.New(rand.NewSource(1))
//	L, _ := matrix.RandLowerTriangular[float64](512, rng)
//	A, _ := ops.Mul[float64](L, matrix.NewTranspose[float64](L)) // A = L·Lᵗ, no copy of Lᵗ
//	F, _ := par.CholeskyBlocked[float64](A, par.WithBlockSize(64))  // F ≈ L
//	Ainv, _ := par.Inverse[float64](A)
//
// The library is silent: every failure is a matrix sentinel error wrapped
// with the failing operation, matched with errors.Is.
package densela
