package sim

// IntentSource supplies the movement intent for a tick, a vector with
// components in [-1, 1] and length at most 1.
type IntentSource interface {
	Intent() (x, y float64)
}

// Viewport reports the size of the visible window in world units.
type Viewport interface {
	ViewSize() (w, h float64)
}

// HUD receives the session stats once per tick.
type HUD interface {
	PublishStats(Stats)
}

// FixedViewport is a Viewport of constant size, for adapters without a
// resizable window.
type FixedViewport struct {
	W, H float64
}

func (v FixedViewport) ViewSize() (float64, float64) { return v.W, v.H }

// IntentFunc adapts a function to IntentSource.
type IntentFunc func() (x, y float64)

func (f IntentFunc) Intent() (float64, float64) { return f() }

// Stats is the per-tick summary handed to the HUD.
type Stats struct {
	Health    float64
	MaxHealth float64
	X, Y      float64
	Hostiles  int // alive hostiles
	Kills     int
	FPS       float64
	ElapsedMs float64
	Downed    bool
}
