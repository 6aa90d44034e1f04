// SPDX-License-Identifier: MIT

package par

import "golang.org/x/sync/errgroup"

// Operation tags for error wrapping.
const (
	opMul             = "par.Mul"
	opTranspose       = "par.Transpose"
	opCholeskyBlocked = "par.CholeskyBlocked"
	opInverse         = "par.Inverse"
)

// task is one unit of fork/join work. It must write only its own region.
type task func() error

// run executes tasks on at most o.workers goroutines and waits for all of
// them. The first error cancels the group: tasks not yet started are skipped
// and that first error is returned. A cancelled parent context is reported
// as its ctx.Err().
func run(o Options, tasks []task) error {
	g, ctx := errgroup.WithContext(o.ctx)
	g.SetLimit(o.workers)
	for _, t := range tasks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return t()
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return o.ctx.Err()
}
