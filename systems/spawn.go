package systems

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/config"
	"github.com/automoto/dronefall/shared/gamemath"
	"github.com/automoto/dronefall/systems/factory"
	"github.com/automoto/dronefall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner runs the spawn director. Every interval of elapsed time it
// adds one hostile, or two with DoubleChance, as long as the population stays
// under MaxAlive. Residual time carries over to the next tick.
func UpdateSpawner(e *ecs.ECS) {
	w := e.World
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	c := components.Settings.Get(session).Config
	clock := components.Clock.Get(session)
	director := components.Director.Get(session)
	rng := components.Random.Get(session).Rand

	director.AccMs += clock.DtMs
	for director.AccMs >= c.Spawn.IntervalMs {
		director.AccMs -= c.Spawn.IntervalMs

		count := 1
		if rng.Float64() < c.Spawn.DoubleChance {
			count = 2
		}
		for range count {
			alive, hunters := countHostiles(w)
			director.Saturated = alive >= c.Spawn.MaxAlive
			if director.Saturated {
				break
			}
			kind := pickKind(rng, c.Spawn, clock.ElapsedMs, hunters)
			x, y := spawnPoint(w, rng, c)
			factory.AcquireHostile(w, kind, x, y)
		}
	}
}

func countHostiles(w donburi.World) (alive, hunters int) {
	session, ok := tags.Session.First(w)
	if !ok {
		return 0, 0
	}
	for _, e := range components.Roster.Get(session).Hostiles {
		h := components.Hostile.Get(w.Entry(e))
		if !h.Alive {
			continue
		}
		alive++
		if h.Kind == config.KindHunter {
			hunters++
		}
	}
	return alive, hunters
}

// pickKind chooses a Hunter with the time-scaled probability unless the
// concurrent Hunter cap is reached.
func pickKind(rng *rand.Rand, s config.SpawnConfig, elapsedMs float64, huntersAlive int) config.HostileKind {
	if huntersAlive < s.HunterCap && rng.Float64() < s.HunterChance(elapsedMs) {
		return config.KindHunter
	}
	return config.KindSwarm
}

// spawnPoint picks a position outside the view, either just past a random
// edge or on a ring around the player, clamped to the world.
func spawnPoint(w donburi.World, rng *rand.Rand, c *config.Config) (x, y float64) {
	session, _ := tags.Session.First(w)
	camera := components.Camera.Get(session)

	switch c.Spawn.Pattern {
	case config.SpawnRing:
		var px, py float64
		if playerEntry, ok := tags.Player.First(w); ok {
			pos := components.Position.Get(playerEntry)
			px, py = pos.X, pos.Y
		}
		angle := rng.Float64() * 2 * math.Pi
		r := c.Spawn.RingRadius + rng.Float64()*c.Spawn.RingJitter
		dx, dy := gamemath.FromAngle(angle)
		x, y = px+dx*r, py+dy*r
	default:
		m := c.Spawn.EdgeMargin
		left, top := camera.Position.X, camera.Position.Y
		right, bottom := left+camera.ViewW, top+camera.ViewH
		switch rng.IntN(4) {
		case 0:
			x, y = left+rng.Float64()*camera.ViewW, top-m
		case 1:
			x, y = right+m, top+rng.Float64()*camera.ViewH
		case 2:
			x, y = left+rng.Float64()*camera.ViewW, bottom+m
		default:
			x, y = left-m, top+rng.Float64()*camera.ViewH
		}
	}

	return gamemath.Clamp(x, 0, c.World.Width), gamemath.Clamp(y, 0, c.World.Height)
}
