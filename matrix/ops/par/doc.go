// Package par runs the blocked kernels of package ops as fork/join task sets.
//
// Every call partitions its output into disjoint write regions (row bands for
// Mul and Transpose, lower Schur tiles for CholeskyBlocked, column bands for
// Inverse), runs one task per region on at most WithWorkers goroutines via
// errgroup, and returns after all tasks have finished. Inputs are read-only
// and no locks are taken. The first task error cancels the remaining tasks
// and is returned; there is no partial result.
//
// The package keeps no state between calls.
package par
