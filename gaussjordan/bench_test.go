package gaussjordan_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matcalc/gaussjordan"
	"github.com/katalvlaran/matcalc/matrix"
)

var benchSizes = []int{4, 16, 64}

// sinks to defeat dead-code elimination
var (
	sinkV []float64
	sinkF float64
	sinkM *matrix.Dense
)

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := diagDominant(b, n, 1)
			rhs := randVec(n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := gaussjordan.Solve(A, rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = x
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := diagDominant(b, n, 3)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := gaussjordan.Determinant(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := diagDominant(b, n, 4)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				inv, err := gaussjordan.Inverse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = inv
			}
		})
	}
}
