// SPDX-License-Identifier: MIT

package par

import (
	"context"
	"runtime"

	"github.com/katalvlaran/densela/matrix/ops"
)

const (
	panicWorkersInvalid   = "par: WithWorkers: workers must be > 0"
	panicBlockSizeInvalid = "par: WithBlockSize: block size must be > 0"
	panicNilContext       = "par: WithContext: nil context"
)

// Option configures a parallel kernel call.
type Option func(*Options)

// Options is the resolved configuration of one call. Nothing outlives it.
type Options struct {
	ctx       context.Context
	workers   int
	blockSize int
}

// WithWorkers bounds the number of concurrently running tasks.
// Defaults to runtime.GOMAXPROCS(0). Panics if n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithBlockSize sets the tile edge (and the row band height of Mul).
// Defaults to ops.DefaultBlockSize(). Panics if nb <= 0.
func WithBlockSize(nb int) Option {
	if nb <= 0 {
		panic(panicBlockSizeInvalid)
	}

	return func(o *Options) { o.blockSize = nb }
}

// WithContext attaches a parent context. Cancelling it makes tasks that have
// not started yet skip their work, and the call returns ctx.Err().
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicNilContext)
	}

	return func(o *Options) { o.ctx = ctx }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		ctx:       context.Background(),
		workers:   runtime.GOMAXPROCS(0),
		blockSize: ops.DefaultBlockSize(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
