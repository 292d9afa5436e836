package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/config"
	"github.com/automoto/dronefall/shared/gamemath"
	"github.com/automoto/dronefall/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnerCadenceCarriesResidual(t *testing.T) {
	w, session := newTestWorld(t, func(c *config.Config) { c.Spawn.DoubleChance = 0 })

	tick(session, 300)
	run(w, UpdateSpawner)
	assert.Empty(t, components.Roster.Get(session).Hostiles)

	tick(session, 100) // 400 total: one spawn, 40 left over
	run(w, UpdateSpawner)
	assert.Len(t, components.Roster.Get(session).Hostiles, 1)
	assert.InDelta(t, 40, components.Director.Get(session).AccMs, 1e-9)

	tick(session, 360*3)
	run(w, UpdateSpawner)
	assert.Len(t, components.Roster.Get(session).Hostiles, 4)
}

func TestSpawnerRespectsPopulationCap(t *testing.T) {
	w, session := newTestWorld(t, func(c *config.Config) {
		c.Spawn.MaxAlive = 5
		c.Spawn.DoubleChance = 1
	})

	for range 20 {
		tick(session, 360)
		run(w, UpdateSpawner)
		assert.LessOrEqual(t, len(liveHostiles(w, session)), 5)
	}
	assert.Len(t, liveHostiles(w, session), 5)
	assert.True(t, components.Director.Get(session).Saturated)
}

func TestSpawnerNeverExceedsHunterCap(t *testing.T) {
	w, session := newTestWorld(t, func(c *config.Config) {
		c.Spawn.MaxAlive = 10000
		c.Spawn.HunterBaseChance = 1
		c.Spawn.HunterChanceCeiling = 1
	})

	for range 200 {
		tick(session, 360)
		run(w, UpdateSpawner)
		_, hunters := countHostiles(w)
		require.LessOrEqual(t, hunters, 4)
	}
	_, hunters := countHostiles(w)
	assert.Equal(t, 4, hunters)
}

func TestHunterFractionFollowsCurve(t *testing.T) {
	s := config.Default().Spawn
	rng := rand.New(rand.NewPCG(42, 1))

	fraction := func(elapsedMs float64) float64 {
		hunters := 0
		const n = 20000
		for range n {
			if pickKind(rng, s, elapsedMs, 0) == config.KindHunter {
				hunters++
			}
		}
		return float64(hunters) / n
	}

	assert.InDelta(t, 0.10, fraction(0), 0.01)
	assert.InDelta(t, 0.16, fraction(3*60000), 0.01)
	assert.InDelta(t, 0.22, fraction(6*60000), 0.01)
	assert.InDelta(t, 0.22, fraction(30*60000), 0.01)

	for range 1000 {
		assert.Equal(t, config.KindSwarm, pickKind(rng, s, 30*60000, s.HunterCap))
	}
}

func TestSeededDirectorHunterFraction(t *testing.T) {
	w, session := newTestWorld(t, func(c *config.Config) { c.Spawn.MaxAlive = 10000 })

	var total, hunters int
	for range 1000 {
		tick(session, 360)
		run(w, UpdateSpawner)
		for _, h := range liveHostiles(w, session) {
			total++
			if components.Hostile.Get(h).Kind == config.KindHunter {
				hunters++
			}
			factory.KillHostile(w, h)
		}
		run(w, PurgeDead)
	}

	// Six minutes of spawns, chance ramps 0.10 to 0.22.
	require.Greater(t, total, 1000)
	assert.InDelta(t, 0.16, float64(hunters)/float64(total), 0.03)
}

func TestEdgeSpawnsOutsideView(t *testing.T) {
	w, session := newTestWorld(t, func(c *config.Config) { c.Spawn.MaxAlive = 10000 })
	camera := components.Camera.Get(session)

	for range 50 {
		tick(session, 360)
		run(w, UpdateSpawner)
	}
	for _, h := range liveHostiles(w, session) {
		pos := components.Position.Get(h)
		assert.False(t, camera.InView(pos.X, pos.Y, 39), "(%v, %v) inside view", pos.X, pos.Y)
		assert.True(t, camera.InView(pos.X, pos.Y, 40))
	}
}

func TestRingSpawnsAroundPlayer(t *testing.T) {
	w, session := newTestWorld(t, func(c *config.Config) {
		c.Spawn.MaxAlive = 10000
		c.Spawn.Pattern = config.SpawnRing
	})

	for range 50 {
		tick(session, 360)
		run(w, UpdateSpawner)
	}
	require.NotEmpty(t, liveHostiles(w, session))
	for _, h := range liveHostiles(w, session) {
		pos := components.Position.Get(h)
		d := gamemath.Distance(4000, 4000, pos.X, pos.Y)
		assert.GreaterOrEqual(t, d, 720-1e-9)
		assert.Less(t, d, 940.0)
	}
}

func TestSpawnsClampToWorld(t *testing.T) {
	w, session := newTestWorld(t, func(c *config.Config) { c.Spawn.MaxAlive = 10000 })
	movePlayer(t, w, 0, 0)

	for range 50 {
		tick(session, 360)
		run(w, UpdateSpawner)
	}
	for _, h := range liveHostiles(w, session) {
		pos := components.Position.Get(h)
		assert.GreaterOrEqual(t, pos.X, 0.0)
		assert.GreaterOrEqual(t, pos.Y, 0.0)
	}
}
