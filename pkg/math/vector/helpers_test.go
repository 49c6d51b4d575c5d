package vector

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-5

// randomComponents returns n values in [-scale, scale).
func randomComponents(rng *rand.Rand, n int, scale float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = (rng.Float32()*2 - 1) * scale
	}
	return out
}

func assertArrayInDelta(t *testing.T, expected, actual []float32, delta float64) {
	t.Helper()
	if !assert.Len(t, actual, len(expected)) {
		return
	}
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], delta, "component %d", i)
	}
}
