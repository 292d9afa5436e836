package systems

import (
	"math"

	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/shared/gamemath"
	"github.com/automoto/dronefall/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera centres the window on the player and keeps it inside the
// world. ViewW and ViewH are filled in from the viewport before this runs.
func UpdateCamera(e *ecs.ECS) {
	w := e.World
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return // no player, keep the last window
	}
	c := components.Settings.Get(session).Config
	camera := components.Camera.Get(session)
	pos := components.Position.Get(playerEntry)

	// A view larger than the world pins the window to the origin.
	maxX := math.Max(0, c.World.Width-camera.ViewW)
	maxY := math.Max(0, c.World.Height-camera.ViewH)

	camera.Position.X = gamemath.Clamp(pos.X-camera.ViewW/2, 0, maxX)
	camera.Position.Y = gamemath.Clamp(pos.Y-camera.ViewH/2, 0, maxY)
}
