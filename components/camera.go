package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the visible window in world space. Position is the top-left
// corner; the adapter reports the view size every tick.
type CameraData struct {
	Position math.Vec2
	ViewW    float64
	ViewH    float64
}

// InView reports whether (x, y) lies within the window padded by margin.
func (c *CameraData) InView(x, y, margin float64) bool {
	sx := x - c.Position.X
	sy := y - c.Position.Y
	return sx >= -margin && sx <= c.ViewW+margin && sy >= -margin && sy <= c.ViewH+margin
}

var Camera = donburi.NewComponentType[CameraData]()
