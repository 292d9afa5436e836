package systems

import (
	"slices"

	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/systems/factory"
	"github.com/automoto/dronefall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PurgeDead drops dead hostiles and projectiles from the live rosters and
// returns them to their pools. Survivors keep their relative order.
func PurgeDead(e *ecs.ECS) {
	w := e.World
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	roster := components.Roster.Get(session)

	roster.Hostiles = slices.DeleteFunc(roster.Hostiles, func(e donburi.Entity) bool {
		entry := w.Entry(e)
		if components.Hostile.Get(entry).Alive {
			return false
		}
		factory.ReleaseHostile(w, entry)
		return true
	})

	deadShot := func(e donburi.Entity) bool {
		entry := w.Entry(e)
		if components.Projectile.Get(entry).Alive {
			return false
		}
		factory.ReleaseProjectile(w, entry)
		return true
	}
	roster.PlayerShots = slices.DeleteFunc(roster.PlayerShots, deadShot)
	roster.HostileShots = slices.DeleteFunc(roster.HostileShots, deadShot)
}

// UpdateEffects advances wreck fades and removes the finished ones from the
// world.
func UpdateEffects(e *ecs.ECS) {
	w := e.World
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	dtMs := components.Clock.Get(session).DtMs
	roster := components.Roster.Get(session)

	roster.Effects = slices.DeleteFunc(roster.Effects, func(e donburi.Entity) bool {
		entry := w.Entry(e)
		alpha, finished := components.Fade.Get(entry).Tween.Update(float32(dtMs))
		if finished {
			w.Remove(e)
			return true
		}
		components.Visual.Get(entry).Alpha = float64(alpha)
		return false
	})
}
