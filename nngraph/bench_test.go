package nngraph_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsphere/nngraph"
)

func randomSphere(n int, seed int64) [][3]float32 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([][3]float32, n)
	for i := range pts {
		x, y, z := rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()
		r := math.Sqrt(x*x + y*y + z*z)
		pts[i] = [3]float32{float32(x / r), float32(y / r), float32(z / r)}
	}

	return pts
}

func BenchmarkBuild_3072(b *testing.B) {
	pts := randomSphere(3072, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := nngraph.Build(pts, 8, 0.01, nngraph.Plotting{}); err != nil {
			b.Fatal(err)
		}
	}
}
