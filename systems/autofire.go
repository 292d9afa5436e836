package systems

import (
	"math"

	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/systems/factory"
	"github.com/automoto/dronefall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAutofire fires the player's weapon on its cadence. Each elapsed
// period aims at the nearest hostile inside the padded view; with no target
// the shot is skipped.
func UpdateAutofire(e *ecs.ECS) {
	w := e.World
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Downed {
		return
	}
	c := components.Settings.Get(session).Config
	clock := components.Clock.Get(session)
	pos := components.Position.Get(playerEntry)

	interval := c.Weapon.FireIntervalMs()
	player.FireAccMs += clock.DtMs
	for player.FireAccMs >= interval {
		player.FireAccMs -= interval

		target, found := nearestVisibleHostile(w, pos.X, pos.Y, c.Weapon.TargetMargin)
		if !found {
			continue
		}
		tpos := components.Position.Get(target)
		factory.SpawnProjectile(w, factory.ShotParams{
			Owner:   components.OwnerPlayer,
			OriginX: pos.X,
			OriginY: pos.Y,
			TargetX: tpos.X,
			TargetY: tpos.Y,
			Speed:   c.Weapon.BulletSpeed,
			Damage:  c.Weapon.Damage,
			Pierce:  c.Weapon.Pierce,
			Radius:  c.Weapon.BulletRadius,
		})
	}
}

// nearestVisibleHostile returns the alive hostile closest to (x, y) whose
// position lies inside the camera window padded by margin.
func nearestVisibleHostile(w donburi.World, x, y, margin float64) (*donburi.Entry, bool) {
	session, ok := tags.Session.First(w)
	if !ok {
		return nil, false
	}
	camera := components.Camera.Get(session)

	var best *donburi.Entry
	bestDist := math.Inf(1)
	for _, e := range components.Roster.Get(session).Hostiles {
		entry := w.Entry(e)
		if !components.Hostile.Get(entry).Alive {
			continue
		}
		pos := components.Position.Get(entry)
		if !camera.InView(pos.X, pos.Y, margin) {
			continue
		}
		// Squared distance is enough for ordering.
		dx, dy := pos.X-x, pos.Y-y
		if d := dx*dx + dy*dy; d < bestDist {
			best, bestDist = entry, d
		}
	}
	return best, best != nil
}
