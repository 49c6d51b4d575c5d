package vector

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestDegToRad(t *testing.T) {
	tests := []struct {
		deg      float32
		expected float32
	}{
		{0, 0},
		{90, math32.Pi / 2},
		{180, math32.Pi},
		{-45, -math32.Pi / 4},
		{360, 2 * math32.Pi},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, DegToRad(tt.deg), epsilon, "DegToRad(%v)", tt.deg)
	}
	assert.InDelta(t, 3.14159265, DegToRad(180), 1e-6)
}

func TestRadToDeg(t *testing.T) {
	for _, deg := range []float32{-270, -1, 0, 30, 57.29578, 180} {
		assert.InDelta(t, deg, RadToDeg(DegToRad(deg)), 1e-4, "round trip of %v", deg)
	}
}
