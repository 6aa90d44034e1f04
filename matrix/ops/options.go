// Package ops - functional options shared by the blocked kernels.
package ops

import "golang.org/x/sys/cpu"

// Block sizes (tile edge, in elements) picked per ISA family.
// Three float64 tiles of the chosen edge fit comfortably in L2:
// 3 * 96 * 96 * 8 bytes = 216KB, 3 * 64 * 64 * 8 = 96KB, 3 * 32 * 32 * 8 = 24KB.
const (
	BlockSizeAVX512   = 96
	BlockSizeAVX2     = 64
	BlockSizeNEON     = 64
	BlockSizeFallback = 32
)

const panicBlockSizeInvalid = "ops: WithBlockSize: block size must be > 0"

// DefaultBlockSize returns the tile edge used when no WithBlockSize option is
// given, based on the CPU features detected at startup.
func DefaultBlockSize() int {
	switch {
	case cpu.X86.HasAVX512F:
		return BlockSizeAVX512
	case cpu.X86.HasAVX2:
		return BlockSizeAVX2
	case cpu.ARM64.HasASIMD:
		return BlockSizeNEON
	default:
		return BlockSizeFallback
	}
}

// Option configures a blocked kernel.
type Option func(*Options)

// Options is the resolved configuration of a blocked kernel call.
type Options struct {
	BlockSize int
}

// WithBlockSize sets the tile edge. Panics if nb <= 0 (programmer error).
func WithBlockSize(nb int) Option {
	if nb <= 0 {
		panic(panicBlockSizeInvalid)
	}

	return func(o *Options) { o.BlockSize = nb }
}

// Resolve applies opts over the defaults. Exported so package par can share
// the blocked kernels' configuration.
func Resolve(opts ...Option) Options {
	o := Options{BlockSize: DefaultBlockSize()}
	for _, set := range opts {
		set(&o)
	}

	return o
}
