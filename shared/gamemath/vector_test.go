package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{name: "inside", v: 5, lo: 0, hi: 10, want: 5},
		{name: "below", v: -3, lo: 0, hi: 10, want: 0},
		{name: "above", v: 8001, lo: 0, hi: 8000, want: 8000},
		{name: "on bound", v: 8000, lo: 0, hi: 8000, want: 8000},
		{name: "huge", v: 1e12, lo: 0, hi: 8000, want: 8000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.v, tt.lo, tt.hi))
		})
	}
}

func TestNormalizeZeroVectorIsFinite(t *testing.T) {
	nx, ny, l := Normalize(0, 0)
	require.False(t, math.IsNaN(nx) || math.IsNaN(ny))
	require.False(t, math.IsInf(nx, 0) || math.IsInf(ny, 0))
	assert.Equal(t, 0.0, nx)
	assert.Equal(t, 0.0, ny)
	assert.Equal(t, 1.0, l)

	// deterministic across calls
	nx2, ny2, l2 := Normalize(0, 0)
	assert.Equal(t, []float64{nx, ny, l}, []float64{nx2, ny2, l2})
}

func TestNormalize(t *testing.T) {
	nx, ny, l := Normalize(3, 4)
	assert.InDelta(t, 0.6, nx, 1e-12)
	assert.InDelta(t, 0.8, ny, 1e-12)
	assert.InDelta(t, 5, l, 1e-12)
	assert.InDelta(t, 1, Length(nx, ny), 1e-12)
}

func TestVelocity(t *testing.T) {
	vx, vy := Velocity(4000, 4000, 4100, 4000, 1400)
	assert.InDelta(t, 1400, vx, 1e-9)
	assert.InDelta(t, 0, vy, 1e-9)

	vx, vy = Velocity(10, 10, 10, 10, 1400)
	assert.Equal(t, 0.0, vx)
	assert.Equal(t, 0.0, vy)
}

func TestPerpAndHeading(t *testing.T) {
	px, py := Perp(1, 0)
	assert.InDelta(t, 0, px, 1e-12)
	assert.InDelta(t, 1, py, 1e-12)

	// moving right means the upward-facing sprite is turned a quarter clockwise
	assert.InDelta(t, math.Pi/2, Heading(1, 0), 1e-12)
	assert.InDelta(t, 0, Heading(0, -1), 1e-12)

	x, y := FromAngle(math.Pi)
	assert.InDelta(t, -1, x, 1e-12)
	assert.InDelta(t, 0, y, 1e-12)
	assert.InDelta(t, 5, Distance(0, 0, 3, 4), 1e-12)
}

func TestSegmentDistance(t *testing.T) {
	tests := []struct {
		name   string
		ax, ay float64
		bx, by float64
		px, py float64
		want   float64
	}{
		{name: "beside the middle", ax: 0, ay: 0, bx: 10, by: 0, px: 5, py: 3, want: 3},
		{name: "before the start", ax: 0, ay: 0, bx: 10, by: 0, px: -4, py: 3, want: 5},
		{name: "past the end", ax: 0, ay: 0, bx: 10, by: 0, px: 13, py: 4, want: 5},
		{name: "degenerate", ax: 2, ay: 2, bx: 2, by: 2, px: 5, py: 6, want: 5},
		{name: "on the segment", ax: 0, ay: 0, bx: 10, by: 10, px: 4, py: 4, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SegmentDistance(tt.ax, tt.ay, tt.bx, tt.by, tt.px, tt.py), 1e-12)
		})
	}
}
