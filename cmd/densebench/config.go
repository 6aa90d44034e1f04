// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/densela/matrix"
)

var (
	errSizeInvalid    = errors.New("size must be > 0")
	errNegativeOption = errors.New("block and workers must be >= 0")
	errUnknownKernel  = errors.New("unknown kernel")
	errDisagreement   = errors.New("results disagree")
)

// config is the flag set of one benchmark run.
type config struct {
	Size     int
	Block    int
	Workers  int
	Seed     int64
	Verify   bool
	RelTol   float64
	AbsTol   float64
	Kernels  []string
	LogLevel string
}

func defaultConfig() *config {
	return &config{
		Size:     1200,
		Seed:     1,
		RelTol:   matrix.DefaultRelTol,
		AbsTol:   matrix.DefaultAbsTol,
		Kernels:  kernelNames(),
		LogLevel: "info",
	}
}

func (c *config) validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("--size %d: %w", c.Size, errSizeInvalid)
	}
	if c.Block < 0 || c.Workers < 0 {
		return fmt.Errorf("--block %d --workers %d: %w", c.Block, c.Workers, errNegativeOption)
	}
	if unknown := lo.Without(c.Kernels, kernelNames()...); len(unknown) > 0 {
		return fmt.Errorf("%v: %w", unknown, errUnknownKernel)
	}

	return nil
}
