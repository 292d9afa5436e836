package systems

import (
	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/shared/gamemath"
	"github.com/automoto/dronefall/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer integrates the player along the sampled intent and clamps the
// result to the world. A downed player no longer moves.
func UpdatePlayer(e *ecs.ECS) {
	w := e.World
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	c := components.Settings.Get(session).Config
	dt := components.Clock.Get(session).DtMs / 1000
	input := components.Input.Get(session)

	player := components.Player.Get(playerEntry)
	pos := components.Position.Get(playerEntry)
	vel := components.Velocity.Get(playerEntry)

	if player.Downed {
		player.IntentX, player.IntentY = 0, 0
		*vel = components.VelocityData{}
		return
	}

	player.IntentX, player.IntentY = input.X, input.Y
	vel.SpeedX = input.X * player.Speed
	vel.SpeedY = input.Y * player.Speed

	pos.X = gamemath.Clamp(pos.X+vel.SpeedX*dt, 0, c.World.Width)
	pos.Y = gamemath.Clamp(pos.Y+vel.SpeedY*dt, 0, c.World.Height)

	// Keep the last facing while idle.
	if vel.SpeedX != 0 || vel.SpeedY != 0 {
		components.Visual.Get(playerEntry).Rotation = gamemath.Heading(vel.SpeedX, vel.SpeedY)
	}
}
