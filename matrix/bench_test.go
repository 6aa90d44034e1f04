// Package matrix_test provides benchmarks for element access through storage
// and views, using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/densela/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix[float64]
	sinkF float64
)

// sumAll reads every cell through the interface.
func sumAll(m matrix.Matrix[float64]) float64 {
	var s float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			s += v
		}
	}

	return s
}

func BenchmarkAtDense(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkF = sumAll(A)
			}
		})
	}
}

func BenchmarkAtTransposeView(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			fillDenseRand(b, A, 4242)
			tv := matrix.NewTranspose[float64](A)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkF = sumAll(tv)
			}
		})
	}
}

func BenchmarkClone(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			fillDenseRand(b, A, 11)
			s := matrix.MustSub[float64](A, 0, 0, n/2, n/2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c, err := matrix.Clone[float64](s)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = c
			}
		})
	}
}
