package systems

import (
	"math"

	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/config"
	"github.com/automoto/dronefall/shared/contract"
	"github.com/automoto/dronefall/shared/gamemath"
	"github.com/automoto/dronefall/systems/factory"
	"github.com/automoto/dronefall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHostiles steers every live hostile for one tick. Swarm drones blend
// seek, orbit and separation; Hunters run their range-keeping state machine.
func UpdateHostiles(e *ecs.ECS) {
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
	clock := components.Clock.Get(session)
	target := components.Position.Get(playerEntry)

	syncNeighbourGrid(w)

	var sample []neighbour
	for _, e := range components.Roster.Get(session).Hostiles {
		entry := w.Entry(e)
		hostile := components.Hostile.Get(entry)
		if !hostile.Alive {
			continue
		}
		contract.Require(!hostile.Pooled, "pooled hostile %v in live roster", e)

		switch hostile.Kind {
		case config.KindHunter:
			updateHunter(w, entry, target.X, target.Y, clock)
		default:
			sample = sampleNeighbours(sample[:0], entry, c.Neighbors.MaxSamples)
			steerSwarm(entry, c, target.X, target.Y, clock, sample)
		}
	}
}

// steerSwarm moves a Swarm drone toward (px, py) with a sinusoidal sideways
// wobble, pushed apart from the sampled neighbours.
func steerSwarm(entry *donburi.Entry, c *config.Config, px, py float64, clock *components.ClockData, sample []neighbour) {
	hostile := components.Hostile.Get(entry)
	pos := components.Position.Get(entry)
	vel := components.Velocity.Get(entry)
	s := c.Swarm

	seekX, seekY, _ := gamemath.Normalize(px-pos.X, py-pos.Y)

	orbit := math.Sin((clock.NowMs*0.001+hostile.Seed)*s.OrbitFrequency) * s.OrbitAmplitude
	perpX, perpY := gamemath.Perp(seekX, seekY)

	var sepX, sepY float64
	r := s.SeparationRadius
	for _, n := range sample {
		dx, dy := pos.X-n.X, pos.Y-n.Y
		d := gamemath.Length(dx, dy)
		// d <= 1 also skips the hostile's own grid object.
		if d > 1 && d < r {
			push := (r - d) / r
			sepX += dx / d * push
			sepY += dy / d * push
		}
	}

	blendX := seekX + perpX*orbit + sepX*s.SeparationWeight
	blendY := seekY + perpY*orbit + sepY*s.SeparationWeight
	dirX, dirY, _ := gamemath.Normalize(blendX, blendY)

	vel.SpeedX = dirX * hostile.Speed
	vel.SpeedY = dirY * hostile.Speed
	integrate(entry, c, clock.DtMs)
	components.Visual.Get(entry).Rotation = gamemath.Heading(vel.SpeedX, vel.SpeedY)
}

// updateHunter advances the Hunter state machine. While telegraphing it
// holds still and tracks the player; otherwise it keeps within its distance
// band and starts a telegraph once the cooldown has run out.
func updateHunter(w donburi.World, entry *donburi.Entry, px, py float64, clock *components.ClockData) {
	session, _ := tags.Session.First(w)
	c := components.Settings.Get(session).Config
	rng := components.Random.Get(session).Rand
	hc := c.Hunter

	hostile := components.Hostile.Get(entry)
	hunter := components.Hunter.Get(entry)
	pos := components.Position.Get(entry)
	vel := components.Velocity.Get(entry)
	visual := components.Visual.Get(entry)

	hunter.CooldownMs = math.Max(0, hunter.CooldownMs-clock.DtMs)
	aimX, aimY, dist := gamemath.Normalize(px-pos.X, py-pos.Y)
	if aimX == 0 && aimY == 0 {
		dist = 0
	}

	if hunter.TelegraphMs > 0 {
		*vel = components.VelocityData{}
		hunter.AimX, hunter.AimY = aimX, aimY
		visual.Rotation = gamemath.Heading(aimX, aimY)
		if math.Sin(clock.NowMs*hc.PulseFrequency) > 0 {
			visual.Alpha = 1
		} else {
			visual.Alpha = 0.5
		}

		hunter.TelegraphMs -= clock.DtMs
		if hunter.TelegraphMs > 0 {
			return
		}
		hunter.TelegraphMs = 0
		visual.Alpha = 1
		if hunter.PendingFire {
			hunter.State = config.StateFire
			fireBurst(w, entry)
			hunter.PendingFire = false
			hunter.CooldownMs = hc.CooldownMs
		}
		hunter.State = hunterBand(hc, dist)
		return
	}

	hunter.StrafeMs -= clock.DtMs
	if hunter.StrafeMs <= 0 {
		hunter.StrafeDir = gamemath.SignOf(rng.Float64())
		hunter.StrafeMs = hc.StrafeMinMs + rng.Float64()*hc.StrafeRangeMs
	}

	hunter.State = hunterBand(hc, dist)
	switch hunter.State {
	case config.StateRetreat:
		scale := hostile.Speed * hc.RetreatScale
		vel.SpeedX, vel.SpeedY = -aimX*scale, -aimY*scale
	case config.StateApproach:
		scale := hostile.Speed * hc.ApproachScale
		vel.SpeedX, vel.SpeedY = aimX*scale, aimY*scale
	default:
		sideX, sideY := gamemath.Perp(aimX, aimY)
		scale := hostile.Speed * hc.StrafeScale * hunter.StrafeDir
		vel.SpeedX, vel.SpeedY = sideX*scale, sideY*scale
	}
	integrate(entry, c, clock.DtMs)
	visual.Rotation = gamemath.Heading(aimX, aimY)

	if hunter.CooldownMs <= 0 {
		hunter.State = config.StateTelegraph
		hunter.TelegraphMs = hc.TelegraphMs
		hunter.PendingFire = true
		hunter.AimX, hunter.AimY = aimX, aimY
	}
}

func hunterBand(hc config.HunterConfig, dist float64) config.StateID {
	switch {
	case dist < hc.MinDistance:
		return config.StateRetreat
	case dist > hc.MaxDistance:
		return config.StateApproach
	default:
		return config.StateStrafe
	}
}

// fireBurst releases BurstCount hostile projectiles fanned BurstSpread
// radians apart around the Hunter's aim. Nothing is spawned when the Hunter
// is outside the view padded by FireMargin.
func fireBurst(w donburi.World, entry *donburi.Entry) {
	session, _ := tags.Session.First(w)
	c := components.Settings.Get(session).Config
	camera := components.Camera.Get(session)
	hc := c.Hunter
	hunter := components.Hunter.Get(entry)
	pos := components.Position.Get(entry)

	if !camera.InView(pos.X, pos.Y, hc.FireMargin) {
		return
	}

	base := math.Atan2(hunter.AimY, hunter.AimX)
	mid := float64(hc.BurstCount-1) / 2
	for i := range hc.BurstCount {
		dx, dy := gamemath.FromAngle(base + (float64(i)-mid)*hc.BurstSpread)
		factory.SpawnProjectile(w, factory.ShotParams{
			Owner:   components.OwnerHostile,
			OriginX: pos.X,
			OriginY: pos.Y,
			TargetX: pos.X + dx*1000,
			TargetY: pos.Y + dy*1000,
			Speed:   hc.BulletSpeed,
			Damage:  hc.BulletDamage,
			Radius:  hc.BulletRadius,
		})
	}

	HunterFired.Publish(w, HunterFiredEvent{
		Entity: entry.Entity(),
		X:      pos.X,
		Y:      pos.Y,
		Shots:  hc.BurstCount,
	})
}

// integrate advances a hostile by its velocity and clamps it to the world.
func integrate(entry *donburi.Entry, c *config.Config, dtMs float64) {
	pos := components.Position.Get(entry)
	vel := components.Velocity.Get(entry)
	pos.X = gamemath.Clamp(pos.X+vel.SpeedX*dtMs/1000, 0, c.World.Width)
	pos.Y = gamemath.Clamp(pos.Y+vel.SpeedY*dtMs/1000, 0, c.World.Height)
}
