package systems

import (
	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/config"
	"github.com/automoto/dronefall/shared/gamemath"
	"github.com/automoto/dronefall/systems/factory"
	"github.com/automoto/dronefall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResolveCollisions tests player shots against hostiles and hostile shots
// against the player. Each shot sweeps the segment it travelled this tick,
// so a target touching the muzzle is still hit. Hostiles are visited in
// roster order, so a shot stops at the first hostile that exhausts it, not
// the nearest.
func ResolveCollisions(e *ecs.ECS) {
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
	roster := components.Roster.Get(session)

	for _, se := range roster.PlayerShots {
		shot := w.Entry(se)
		if components.Projectile.Get(shot).Alive {
			hitHostiles(w, shot, roster.Hostiles, playerEntry)
		}
	}

	playerPos := components.Position.Get(playerEntry)
	for _, se := range roster.HostileShots {
		shot := w.Entry(se)
		data := components.Projectile.Get(shot)
		if !data.Alive {
			continue
		}
		pos := components.Position.Get(shot)
		if gamemath.SegmentDistance(data.PrevX, data.PrevY, pos.X, pos.Y, playerPos.X, playerPos.Y) >= data.Radius+c.Player.CollisionRadius {
			continue
		}
		DamagePlayer(w, playerEntry, data.Damage)
		factory.KillProjectile(shot)
		PlayerHit.Publish(w, PlayerHitEvent{
			Damage: data.Damage,
			Health: components.Health.Get(playerEntry).Current,
		})
	}
}

func hitHostiles(w donburi.World, shot *donburi.Entry, hostiles []donburi.Entity, playerEntry *donburi.Entry) {
	data := components.Projectile.Get(shot)
	pos := components.Position.Get(shot)
	player := components.Player.Get(playerEntry)

	for _, he := range hostiles {
		hostile := w.Entry(he)
		hd := components.Hostile.Get(hostile)
		if !hd.Alive {
			continue
		}
		hpos := components.Position.Get(hostile)
		if gamemath.SegmentDistance(data.PrevX, data.PrevY, pos.X, pos.Y, hpos.X, hpos.Y) >= data.Radius+hd.Radius {
			continue
		}

		if DamageHostile(w, hostile, data.Damage) {
			player.Kills++
			HostileKilled.Publish(w, HostileKilledEvent{
				Entity: he,
				Kind:   hd.Kind,
				X:      hpos.X,
				Y:      hpos.Y,
				Kills:  player.Kills,
			})
		}

		if data.Pierce > 0 {
			data.Pierce--
			continue
		}
		factory.KillProjectile(shot)
		return
	}
}

// ApplyContactDamage drains the player's health for every live Swarm drone
// touching it, at each drone's ContactDPS scaled by the tick delta.
func ApplyContactDamage(e *ecs.ECS) {
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
	dtMs := components.Clock.Get(session).DtMs
	playerPos := components.Position.Get(playerEntry)

	var dps float64
	for _, he := range components.Roster.Get(session).Hostiles {
		hostile := w.Entry(he)
		hd := components.Hostile.Get(hostile)
		if !hd.Alive || hd.Kind != config.KindSwarm {
			continue
		}
		hpos := components.Position.Get(hostile)
		if gamemath.Distance(hpos.X, hpos.Y, playerPos.X, playerPos.Y) < hd.Radius+c.Player.CollisionRadius {
			dps += hd.ContactDPS
		}
	}
	if dps > 0 {
		DamagePlayer(w, playerEntry, dps*dtMs/1000)
	}
}
