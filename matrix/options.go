// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction and the
// numeric tolerances used by agreement checks. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global mutable state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles finite-value validation in Set/Create.
	// Off by default: the kernels write many intermediate values and the
	// Cholesky radicand check already rejects NaN.
	DefaultValidateNaNInf = false

	// DefaultRelTol is the relative tolerance used when comparing results of
	// kernel variants that differ only in summation order.
	DefaultRelTol = 1e-9

	// DefaultAbsTol is the absolute floor paired with DefaultRelTol so that
	// entries that should be exactly zero compare equal after cancellation.
	DefaultAbsTol = 1e-9
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation on the new matrix.
// Set, Create and NewDenseFrom then reject NaN and ±Inf with ErrNaNInf.
// The flag is carried by Clone; views write through the base's policy.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user setters over the defaults in order
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
