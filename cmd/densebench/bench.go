// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/katalvlaran/densela/matrix"
	"github.com/katalvlaran/densela/matrix/ops"
	"github.com/katalvlaran/densela/matrix/ops/par"
)

type mat = matrix.Matrix[float64]

// env is the shared input of one run. l and a are never mutated by kernels.
type env struct {
	l, a    *matrix.Dense[float64]
	inv     *matrix.Dense[float64] // reference inverse, built on first use
	seqOpts []ops.Option
	parOpts []par.Option
}

// kernel is one timed operation. setup runs untimed and its result is the
// input of run. want returns the reference result; nil skips verification.
type kernel struct {
	name  string
	setup func(e *env) (mat, error)
	run   func(e *env, in mat) (mat, error)
	want  func(e *env) (mat, error)
}

var kernels = []kernel{
	{
		name: "mul",
		run:  func(e *env, _ mat) (mat, error) { return ops.Mul[float64](e.l, matrix.NewTranspose[float64](e.l)) },
	},
	{
		name: "mul-par",
		run: func(e *env, _ mat) (mat, error) {
			return par.Mul[float64](e.l, matrix.NewTranspose[float64](e.l), e.parOpts...)
		},
		want: wantA,
	},
	{
		name: "mul-blocked",
		run: func(e *env, _ mat) (mat, error) {
			return ops.MulBlocked[float64](e.l, matrix.NewTranspose[float64](e.l), e.seqOpts...)
		},
		want: wantA,
	},
	{
		name: "transpose",
		run:  func(e *env, _ mat) (mat, error) { return ops.Transpose[float64](e.l) },
		want: wantLt,
	},
	{
		name: "transpose-par",
		run:  func(e *env, _ mat) (mat, error) { return par.Transpose[float64](e.l, e.parOpts...) },
		want: wantLt,
	},
	{
		name: "inverse",
		run:  func(e *env, _ mat) (mat, error) { return ops.Inverse[float64](e.a) },
		want: wantInverse,
	},
	{
		name: "inverse-par",
		run:  func(e *env, _ mat) (mat, error) { return par.Inverse[float64](e.a, e.parOpts...) },
		want: wantInverse,
	},
	{
		name:  "cholesky",
		setup: func(e *env) (mat, error) { return e.a.Clone(), nil },
		run: func(_ *env, in mat) (mat, error) {
			if err := ops.CholeskyInPlace(in); err != nil {
				return nil, err
			}
			return in, nil
		},
		want: wantL,
	},
	{
		name: "cholesky-blocked",
		run:  func(e *env, _ mat) (mat, error) { return ops.CholeskyBlocked[float64](e.a, e.seqOpts...) },
		want: wantL,
	},
	{
		name: "cholesky-par",
		run:  func(e *env, _ mat) (mat, error) { return par.CholeskyBlocked[float64](e.a, e.parOpts...) },
		want: wantL,
	},
}

func kernelNames() []string {
	return lo.Map(kernels, func(k kernel, _ int) string { return k.name })
}

func wantA(e *env) (mat, error)  { return e.a, nil }
func wantL(e *env) (mat, error)  { return e.l, nil }
func wantLt(e *env) (mat, error) { return matrix.NewTranspose[float64](e.l), nil }

// wantInverse uses the LU route so the Cholesky inverses are checked against
// an independent algorithm.
func wantInverse(e *env) (mat, error) {
	if e.inv == nil {
		inv, err := ops.InverseLU[float64](e.a)
		if err != nil {
			return nil, err
		}
		e.inv = inv
	}

	return e.inv, nil
}

// runBenchmark builds the input, times the selected kernels in table order
// and, with --verify, compares each result with its reference.
func runBenchmark(ctx context.Context, cfg *config, logger zerolog.Logger) error {
	e, err := newEnv(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Info().
		Int("n", cfg.Size).
		Int("block", lo.Ternary(cfg.Block > 0, cfg.Block, ops.DefaultBlockSize())).
		Int("workers", cfg.Workers).
		Int64("seed", cfg.Seed).
		Msg("benchmarking")

	selected := lo.Filter(kernels, func(k kernel, _ int) bool { return lo.Contains(cfg.Kernels, k.name) })
	failed := 0
	for _, k := range selected {
		if err = ctx.Err(); err != nil {
			return err
		}
		var (
			in, got mat
			ok      bool
		)
		if k.setup != nil {
			if in, err = k.setup(e); err != nil {
				return fmt.Errorf("%s setup: %w", k.name, err)
			}
		}
		start := time.Now()
		got, err = k.run(e, in)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("%s: %w", k.name, err)
		}
		logger.Info().Str("kernel", k.name).Int("n", cfg.Size).Dur("elapsed", elapsed).Msg("timed")

		if !cfg.Verify || k.want == nil {
			continue
		}
		if ok, err = verify(e, k, got, cfg, logger); err != nil {
			return fmt.Errorf("%s verify: %w", k.name, err)
		}
		if !ok {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d kernel(s): %w", failed, errDisagreement)
	}

	return nil
}

func newEnv(ctx context.Context, cfg *config) (*env, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	l, err := matrix.RandLowerTriangular[float64](cfg.Size, rng)
	if err != nil {
		return nil, err
	}
	a, err := ops.Mul[float64](l, matrix.NewTranspose[float64](l))
	if err != nil {
		return nil, err
	}

	e := &env{l: l, a: a, parOpts: []par.Option{par.WithContext(ctx)}}
	if cfg.Block > 0 {
		e.seqOpts = append(e.seqOpts, ops.WithBlockSize(cfg.Block))
		e.parOpts = append(e.parOpts, par.WithBlockSize(cfg.Block))
	}
	if cfg.Workers > 0 {
		e.parOpts = append(e.parOpts, par.WithWorkers(cfg.Workers))
	}

	return e, nil
}

// verify compares the lower triangle for Cholesky results (the in-place
// variant leaves A's upper triangle behind) and the full matrix otherwise.
func verify(e *env, k kernel, got mat, cfg *config, logger zerolog.Logger) (bool, error) {
	want, err := k.want(e)
	if err != nil {
		return false, err
	}
	if want == mat(e.l) {
		if got, err = lowerTriangle(got); err != nil {
			return false, err
		}
	}
	ok, err := matrix.AllClose(got, want, cfg.RelTol, cfg.AbsTol)
	if err != nil {
		return false, err
	}
	diff, err := ops.Sub(got, want)
	if err != nil {
		return false, err
	}
	maxDiff, err := ops.MaxAbs[float64](diff)
	if err != nil {
		return false, err
	}

	ev := logger.Info()
	if !ok {
		ev = logger.Warn()
	}
	ev.Str("kernel", k.name).Float64("max_abs_diff", maxDiff).Bool("agree", ok).Msg("verified")

	return ok, nil
}

// lowerTriangle copies the lower triangle of m into a new Dense.
func lowerTriangle(m mat) (*matrix.Dense[float64], error) {
	n := m.Rows()
	return matrix.Create(n, m.Cols(), func(i, j int) float64 {
		if j > i {
			return 0
		}
		v, _ := m.At(i, j) // in range by construction
		return v
	})
}
