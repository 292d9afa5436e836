package systems

import (
	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/systems/factory"
	"github.com/automoto/dronefall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles ages every live projectile and integrates its position.
// A projectile whose lifetime runs out dies without moving.
func UpdateProjectiles(e *ecs.ECS) {
	w := e.World
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	dtMs := components.Clock.Get(session).DtMs
	roster := components.Roster.Get(session)

	step := func(shots []donburi.Entity) {
		for _, e := range shots {
			shot := w.Entry(e)
			data := components.Projectile.Get(shot)
			if !data.Alive {
				continue
			}
			data.LifeMs -= dtMs
			if data.LifeMs <= 0 {
				factory.KillProjectile(shot)
				continue
			}
			pos := components.Position.Get(shot)
			vel := components.Velocity.Get(shot)
			data.PrevX, data.PrevY = pos.X, pos.Y
			pos.X += vel.SpeedX * dtMs / 1000
			pos.Y += vel.SpeedY * dtMs / 1000
		}
	}
	step(roster.PlayerShots)
	step(roster.HostileShots)
}

// CullProjectiles kills projectiles that left the camera window padded by
// CullPadding, whatever their remaining lifetime.
func CullProjectiles(e *ecs.ECS) {
	w := e.World
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	c := components.Settings.Get(session).Config
	camera := components.Camera.Get(session)
	roster := components.Roster.Get(session)

	cull := func(shots []donburi.Entity) {
		for _, e := range shots {
			shot := w.Entry(e)
			if !components.Projectile.Get(shot).Alive {
				continue
			}
			pos := components.Position.Get(shot)
			if !camera.InView(pos.X, pos.Y, c.Combat.CullPadding) {
				factory.KillProjectile(shot)
			}
		}
	}
	cull(roster.PlayerShots)
	cull(roster.HostileShots)
}
