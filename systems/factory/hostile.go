package factory

import (
	"github.com/automoto/dronefall/archetypes"
	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/config"
	"github.com/automoto/dronefall/shared/contract"
	"github.com/automoto/dronefall/shared/gamemath"
	"github.com/automoto/dronefall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// AcquireHostile activates a hostile of the given kind at (x, y), reusing a
// pooled entity of that kind when one is available. Every mutable field is
// reset, so a recycled hostile is indistinguishable from a fresh one. The
// hostile is appended to the live roster.
func AcquireHostile(w donburi.World, kind config.HostileKind, x, y float64) *donburi.Entry {
	session, ok := tags.Session.First(w)
	if !ok {
		return nil
	}
	c := components.Settings.Get(session).Config
	pool := components.Pool.Get(session)
	roster := components.Roster.Get(session)
	rng := components.Random.Get(session)

	var hostile *donburi.Entry
	if free := pool.Hostiles[kind]; len(free) > 0 {
		hostile = w.Entry(free[len(free)-1])
		pool.Hostiles[kind] = free[:len(free)-1]
		contract.Require(components.Hostile.Get(hostile).Pooled, "hostile %v acquired but not pooled", hostile.Entity())
	} else {
		hostile = newHostile(w, kind, c)
	}

	x = gamemath.Clamp(x, 0, c.World.Width)
	y = gamemath.Clamp(y, 0, c.World.Height)

	var hp, speed, radius, dps float64
	switch kind {
	case config.KindHunter:
		hp, speed, radius = c.Hunter.Health, c.Hunter.Speed, c.Hunter.Radius
		components.Hunter.SetValue(hostile, components.HunterData{
			State:      config.StateApproach,
			CooldownMs: c.Hunter.InitialCooldownMs + rng.Float64()*c.Hunter.InitialCooldownRangeMs,
			StrafeDir:  gamemath.SignOf(rng.Float64()),
		})
	default:
		hp, speed, radius, dps = c.Swarm.Health, c.Swarm.Speed, c.Swarm.Radius, c.Swarm.ContactDPS
	}

	components.Hostile.SetValue(hostile, components.HostileData{
		Kind:       kind,
		Radius:     radius,
		Speed:      speed,
		Seed:       rng.Float64() * 1000,
		ContactDPS: dps,
		Alive:      true,
	})
	components.Health.SetValue(hostile, components.HealthData{Current: hp, Max: hp})
	components.Position.SetValue(hostile, components.PositionData{X: x, Y: y})
	components.Velocity.SetValue(hostile, components.VelocityData{})
	components.Visual.SetValue(hostile, components.VisualData{Alpha: 1, Visible: true})

	obj := components.Object.Get(hostile)
	obj.X = x - obj.W/2
	obj.Y = y - obj.H/2
	if space, ok := components.Space.First(w); ok {
		components.Space.Get(space).Add(obj.Object)
	}

	roster.Hostiles = append(roster.Hostiles, hostile.Entity())
	return hostile
}

func newHostile(w donburi.World, kind config.HostileKind, c *config.Config) *donburi.Entry {
	var hostile *donburi.Entry
	if kind == config.KindHunter {
		hostile = archetypes.Hunter.Spawn(w)
	} else {
		hostile = archetypes.Swarm.Spawn(w)
	}

	// The box spans the separation radius so a grid query returns every
	// hostile that could push this one.
	side := 2 * c.Swarm.SeparationRadius
	obj := resolv.NewObject(0, 0, side, side, tags.ResolvHostile)
	obj.Data = hostile.Entity()
	components.Object.SetValue(hostile, components.ObjectData{Object: obj})

	return hostile
}

// KillHostile marks a hostile dead and hides it. It leaves the neighbour
// grid right away and is moved to its kind pool by PurgeDead.
func KillHostile(w donburi.World, hostile *donburi.Entry) {
	data := components.Hostile.Get(hostile)
	if !data.Alive {
		return
	}
	data.Alive = false
	components.Visual.Get(hostile).Visible = false

	if space, ok := components.Space.First(w); ok {
		components.Space.Get(space).Remove(components.Object.Get(hostile).Object)
	}
}

// ReleaseHostile returns a dead hostile to its kind pool.
func ReleaseHostile(w donburi.World, hostile *donburi.Entry) {
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	data := components.Hostile.Get(hostile)
	contract.Require(!data.Alive, "hostile %v released while alive", hostile.Entity())
	contract.Require(!data.Pooled, "hostile %v released twice", hostile.Entity())
	if data.Pooled {
		return
	}
	data.Pooled = true

	pool := components.Pool.Get(session)
	pool.Hostiles[data.Kind] = append(pool.Hostiles[data.Kind], hostile.Entity())
}
