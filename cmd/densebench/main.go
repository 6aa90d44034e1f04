// SPDX-License-Identifier: MIT

// Command densebench times every dense kernel on one N×N SPD input
// A = L·Lᵗ built from a random lower-triangular L, and optionally checks that
// the blocked and parallel results agree with the naive ones.
//
// Usage:
//
//	densebench --size 1200 --block 64 --workers 8 --verify
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()
	cmd := &cobra.Command{
		Use:          "densebench",
		Short:        "Benchmark naive, blocked and parallel dense kernels",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			out := cmd.ErrOrStderr()
			noColor := true
			if f, ok := out.(*os.File); ok {
				noColor = !isatty.IsTerminal(f.Fd())
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: noColor}).
				Level(level).With().Timestamp().Logger()

			if err = cfg.validate(); err != nil {
				return err
			}
			return runBenchmark(cmd.Context(), cfg, logger)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&cfg.Size, "size", "n", cfg.Size, "matrix dimension N")
	f.IntVar(&cfg.Block, "block", cfg.Block, "tile edge for blocked kernels (0 = detect from CPU)")
	f.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "parallel task limit (0 = GOMAXPROCS)")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for the generated factor")
	f.BoolVar(&cfg.Verify, "verify", cfg.Verify, "check blocked and parallel results against the naive ones")
	f.Float64Var(&cfg.RelTol, "rtol", cfg.RelTol, "relative tolerance of --verify")
	f.Float64Var(&cfg.AbsTol, "atol", cfg.AbsTol, "absolute tolerance of --verify")
	f.StringSliceVarP(&cfg.Kernels, "kernels", "k", cfg.Kernels, "kernels to run")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "zerolog level (debug, info, warn, error)")

	return cmd
}
