package vector

import (
	"math/rand"
	"testing"

	"github.com/viterin/vek/vek32"
)

// Package-level sinks keep the compiler from eliding benchmarked calls.
var (
	sinkVector3 Vector3
	sinkScalar  float32
	sinkBytes   []byte
)

func generateBenchVectors(n int) []Vector3 {
	rng := rand.New(rand.NewSource(1))
	out := make([]Vector3, n)
	for i := range out {
		out[i] = Vector3FromArray([3]float32(randomComponents(rng, 3, 1)))
	}
	return out
}

// BenchmarkVector3_Cross benchmarks the cross product
func BenchmarkVector3_Cross(b *testing.B) {
	vs := generateBenchVectors(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkVector3 = vs[i%len(vs)].Cross(vs[(i+1)%len(vs)])
	}
}

// BenchmarkVector3_Magnitude compares the scalar path with vek32 on a
// 3-element slice, which is dominated by call overhead.
func BenchmarkVector3_Magnitude(b *testing.B) {
	vs := generateBenchVectors(1024)

	b.Run("Vector3", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkScalar = vs[i%len(vs)].Magnitude()
		}
	})

	b.Run("vek32", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			arr := vs[i%len(vs)].ToArray()
			sinkScalar = vek32.Norm(arr[:])
		}
	})
}

// BenchmarkVector3_Normalize benchmarks normalization
func BenchmarkVector3_Normalize(b *testing.B) {
	vs := generateBenchVectors(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkVector3 = vs[i%len(vs)].Normalize()
	}
}

// BenchmarkVector3_Polar benchmarks a spherical round trip
func BenchmarkVector3_Polar(b *testing.B) {
	vs := generateBenchVectors(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := vs[i%len(vs)]
		sinkVector3 = Vector3FromPolar(v.Magnitude(), v.Theta(), v.Phi())
	}
}

// BenchmarkVector3_AppendBinary benchmarks binary encoding into a reused buffer
func BenchmarkVector3_AppendBinary(b *testing.B) {
	vs := generateBenchVectors(1024)
	buf := make([]byte, 0, 3*componentSize)
	b.SetBytes(3 * componentSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkBytes, _ = vs[i%len(vs)].AppendBinary(buf[:0])
	}
}
