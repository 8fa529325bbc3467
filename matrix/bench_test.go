package matrix_test

import (
	"testing"

	"github.com/katalvlaran/geomline/matrix"
)

// benchmarkMul multiplies two n×n float64 matrices b.N times.
func benchmarkMul(b *testing.B, n int) {
	values := make([]float64, n*n)
	for i := range values {
		values[i] = float64(i%7) - 3 // predictable small values
	}
	lhs, err := matrix.NewFrom(n, n, values)
	if err != nil {
		b.Fatalf("NewFrom failed: %v", err)
	}
	rhs := lhs.Clone()

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = lhs.Mul(rhs); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

// BenchmarkMul8 benchmarks multiplication of small 8×8 matrices.
func BenchmarkMul8(b *testing.B) { benchmarkMul(b, 8) }

// BenchmarkMul64 benchmarks multiplication of medium 64×64 matrices.
func BenchmarkMul64(b *testing.B) { benchmarkMul(b, 64) }

// BenchmarkTransposed128 benchmarks transposition of a 128×128 matrix.
func BenchmarkTransposed128(b *testing.B) {
	m, err := matrix.New[float64](128, 128)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Transposed()
	}
}
