// Package gamemath holds the scalar and vector helpers shared by the
// simulation systems. It has no dependencies on ebiten or donburi so it can
// be used from any adapter.
package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Length returns the euclidean length of (x, y).
func Length(x, y float64) float64 {
	return math.Hypot(x, y)
}

// Distance returns the distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// Normalize returns the unit vector of (x, y) together with the original
// length. A zero vector is treated as having length 1, so the result is
// (0, 0, 1) instead of NaN.
func Normalize(x, y float64) (nx, ny, length float64) {
	length = math.Hypot(x, y)
	if length == 0 || math.IsNaN(length) {
		length = 1
	}
	return x / length, y / length, length
}

// SegmentDistance returns the distance from (px, py) to the segment from
// (ax, ay) to (bx, by). A degenerate segment is treated as a point.
func SegmentDistance(ax, ay, bx, by, px, py float64) float64 {
	dx, dy := bx-ax, by-ay
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return Distance(ax, ay, px, py)
	}
	t := Clamp(((px-ax)*dx+(py-ay)*dy)/l2, 0, 1)
	return Distance(ax+t*dx, ay+t*dy, px, py)
}

// Perp rotates (x, y) by 90 degrees counter-clockwise.
func Perp(x, y float64) (float64, float64) {
	return -y, x
}

// FromAngle returns the unit vector for an angle in radians.
func FromAngle(angle float64) (float64, float64) {
	return math.Cos(angle), math.Sin(angle)
}

// Velocity returns velocity components of magnitude speed pointing from
// (fromX, fromY) toward (toX, toY). Coincident points yield a zero velocity.
func Velocity(fromX, fromY, toX, toY, speed float64) (velX, velY float64) {
	nx, ny, _ := Normalize(toX-fromX, toY-fromY)
	return nx * speed, ny * speed
}

// Heading converts a velocity into a sprite rotation, where the sprite's
// forward axis points up (-Y) and so needs a quarter turn.
func Heading(vx, vy float64) float64 {
	return math.Atan2(vy, vx) + math.Pi/2
}

// SignOf maps a uniform sample in [0, 1) to -1 or 1.
func SignOf(r float64) float64 {
	if r < 0.5 {
		return -1
	}
	return 1
}
