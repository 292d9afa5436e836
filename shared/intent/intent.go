// Package intent turns raw input provider state into the normalized
// movement vector the simulation consumes. Providers (keyboard, on-screen
// joystick) stay in the adapters; only their resulting axes come here.
package intent

import "math"

// Vector is a movement intent with magnitude in [0, 1].
type Vector struct {
	X, Y float64
}

// IsZero reports whether the intent carries no movement.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// KeyboardAxis combines four directional keys into an axis. Opposite keys
// cancel out and diagonals are scaled back to unit length.
func KeyboardAxis(left, right, up, down bool) Vector {
	var v Vector
	if left {
		v.X--
	}
	if right {
		v.X++
	}
	if up {
		v.Y--
	}
	if down {
		v.Y++
	}
	if v.X != 0 && v.Y != 0 {
		inv := 1 / math.Sqrt2
		v.X *= inv
		v.Y *= inv
	}
	return v
}

// Joystick converts a knob offset (dx, dy) from the joystick origin into an
// intent, where radius is the knob travel. Offsets beyond the radius are
// clamped to the unit disc; offsets too small to measure yield zero.
func Joystick(dx, dy, radius float64) Vector {
	if radius <= 0 {
		return Vector{}
	}
	nx := math.Max(-1, math.Min(1, dx/radius))
	ny := math.Max(-1, math.Min(1, dy/radius))
	l := math.Hypot(nx, ny)
	if l <= 1e-6 {
		return Vector{}
	}
	scale := math.Max(1, l)
	return Vector{X: nx / scale, Y: ny / scale}
}

// Merge applies provider precedence: keyboard intent wins when non-zero,
// otherwise the joystick intent is used. The result never exceeds unit
// length.
func Merge(keyboard, joystick Vector) Vector {
	v := joystick
	if !keyboard.IsZero() {
		v = keyboard
	}
	if l := math.Hypot(v.X, v.Y); l > 1 {
		v.X /= l
		v.Y /= l
	}
	return v
}
