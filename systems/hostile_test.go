package systems

import (
	"math"
	"sort"
	"testing"

	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/config"
	"github.com/automoto/dronefall/shared/gamemath"
	"github.com/automoto/dronefall/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestSwarmSeeksPlayer(t *testing.T) {
	w, session := newTestWorld(t)
	drone := factory.AcquireHostile(w, config.KindSwarm, 4300, 4000)

	before := components.Position.Get(drone).X
	tick(session, 100)
	run(w, UpdateHostiles)

	pos := components.Position.Get(drone)
	vel := components.Velocity.Get(drone)
	assert.Less(t, pos.X, before, "moves toward the player")
	assert.InDelta(t, 320, gamemath.Length(vel.SpeedX, vel.SpeedY), 1e-9)
	assert.InDelta(t, gamemath.Heading(vel.SpeedX, vel.SpeedY), components.Visual.Get(drone).Rotation, 1e-12)
}

func TestSwarmSeparatesFromNeighbours(t *testing.T) {
	w, session := newTestWorld(t, func(c *config.Config) { c.Swarm.OrbitAmplitude = 0 })
	// Both drones sit on the line to the player; the rear one is pushed back.
	front := factory.AcquireHostile(w, config.KindSwarm, 4200, 4000)
	rear := factory.AcquireHostile(w, config.KindSwarm, 4230, 4000)
	lone := factory.AcquireHostile(w, config.KindSwarm, 4000, 4500)

	tick(session, 16)
	run(w, UpdateHostiles)

	// Seek is -1 along x, separation +0.9*(54-30)/54 = +0.4.
	assert.InDelta(t, -320, components.Velocity.Get(front).SpeedX, 1e-9, "pushed forward, still full speed")
	assert.InDelta(t, -320, components.Velocity.Get(rear).SpeedX, 1e-9)
	assert.InDelta(t, -320, components.Velocity.Get(lone).SpeedY, 1e-9)
}

func TestSwarmSeparationTurnsSideways(t *testing.T) {
	w, session := newTestWorld(t, func(c *config.Config) { c.Swarm.OrbitAmplitude = 0 })
	drone := factory.AcquireHostile(w, config.KindSwarm, 4300, 4000)
	factory.AcquireHostile(w, config.KindSwarm, 4300, 3980)

	tick(session, 16)
	run(w, UpdateHostiles)

	assert.Greater(t, components.Velocity.Get(drone).SpeedY, 0.0, "pushed away from the drone above")
}

func TestHostilesStayInWorld(t *testing.T) {
	w, session := newTestWorld(t, func(c *config.Config) { c.Swarm.Speed = 1e9 })
	movePlayer(t, w, 0, 0)
	drone := factory.AcquireHostile(w, config.KindSwarm, 50, 50)

	tick(session, 1000)
	run(w, UpdateHostiles)

	pos := components.Position.Get(drone)
	assert.GreaterOrEqual(t, pos.X, 0.0)
	assert.GreaterOrEqual(t, pos.Y, 0.0)
}

func TestHunterDistanceBands(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		state config.StateID
		speed float64
	}{
		{"retreat", 4100, config.StateRetreat, 240 * 1.05},
		{"strafe", 4300, config.StateStrafe, 240 * 0.40},
		{"approach", 4500, config.StateApproach, 240 * 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, session := newTestWorld(t)
			hunter := factory.AcquireHostile(w, config.KindHunter, tt.x, 4000)

			tick(session, 16)
			run(w, UpdateHostiles)

			data := components.Hunter.Get(hunter)
			vel := components.Velocity.Get(hunter)
			assert.Equal(t, tt.state, data.State)
			assert.InDelta(t, tt.speed, gamemath.Length(vel.SpeedX, vel.SpeedY), 1e-9)
			switch tt.state {
			case config.StateRetreat:
				assert.Greater(t, vel.SpeedX, 0.0)
			case config.StateApproach:
				assert.Less(t, vel.SpeedX, 0.0)
			default:
				assert.InDelta(t, 0, vel.SpeedX, 1e-9)
			}
		})
	}
}

func TestHunterEntersTelegraphWhenCooldownEnds(t *testing.T) {
	w, session := newTestWorld(t)
	hunter := factory.AcquireHostile(w, config.KindHunter, 4300, 4000)
	data := components.Hunter.Get(hunter)
	data.CooldownMs = 10

	tick(session, 16)
	run(w, UpdateHostiles)

	assert.Equal(t, config.StateTelegraph, data.State)
	assert.Equal(t, 300.0, data.TelegraphMs)
	assert.True(t, data.PendingFire)

	// Telegraphing holds still and keeps aiming.
	pos := *components.Position.Get(hunter)
	tick(session, 16)
	run(w, UpdateHostiles)
	assert.Equal(t, pos, *components.Position.Get(hunter))
	assert.InDelta(t, -1, data.AimX, 1e-3)
	assert.Contains(t, []float64{0.5, 1}, components.Visual.Get(hunter).Alpha)
	assert.Empty(t, components.Roster.Get(session).HostileShots)
}

func TestHunterFiresThreeShotSpread(t *testing.T) {
	w, session := newTestWorld(t)
	hunter := factory.AcquireHostile(w, config.KindHunter, 4300, 4000)
	data := components.Hunter.Get(hunter)
	data.State = config.StateTelegraph
	data.TelegraphMs = 10
	data.PendingFire = true

	var fired []HunterFiredEvent
	HunterFired.Subscribe(w, func(_ donburi.World, ev HunterFiredEvent) { fired = append(fired, ev) })

	tick(session, 16)
	run(w, UpdateHostiles)
	FlushEvents(w)

	shots := components.Roster.Get(session).HostileShots
	require.Len(t, shots, 3)

	aim := math.Atan2(data.AimY, data.AimX)
	var offsets []float64
	for _, e := range shots {
		vel := components.Velocity.Get(w.Entry(e))
		d := math.Atan2(vel.SpeedY, vel.SpeedX) - aim
		offsets = append(offsets, math.Remainder(d, 2*math.Pi))
		assert.InDelta(t, 1200, gamemath.Length(vel.SpeedX, vel.SpeedY), 1e-9)
		assert.Equal(t, components.OwnerHostile, components.Projectile.Get(w.Entry(e)).Owner)
	}
	sort.Float64s(offsets)
	assert.InDeltaSlice(t, []float64{-0.18, 0, 0.18}, offsets, 1e-9)

	assert.Equal(t, 2200.0, data.CooldownMs)
	assert.False(t, data.PendingFire)
	assert.Zero(t, data.TelegraphMs)
	assert.Equal(t, 1.0, components.Visual.Get(hunter).Alpha)
	require.Len(t, fired, 1)
	assert.Equal(t, 3, fired[0].Shots)
}

func TestHunterOffscreenBurstIsDropped(t *testing.T) {
	w, session := newTestWorld(t)
	hunter := factory.AcquireHostile(w, config.KindHunter, 6000, 4000)
	data := components.Hunter.Get(hunter)
	data.TelegraphMs = 10
	data.PendingFire = true

	tick(session, 16)
	run(w, UpdateHostiles)

	assert.Empty(t, components.Roster.Get(session).HostileShots)
	assert.Equal(t, 2200.0, data.CooldownMs, "cooldown resets even when nothing spawns")
}

func TestHunterStrafeTimerPicksDirection(t *testing.T) {
	w, session := newTestWorld(t)
	hunter := factory.AcquireHostile(w, config.KindHunter, 4300, 4000)
	data := components.Hunter.Get(hunter)
	data.StrafeMs = 0

	tick(session, 16)
	run(w, UpdateHostiles)

	assert.Contains(t, []float64{-1, 1}, data.StrafeDir)
	assert.GreaterOrEqual(t, data.StrafeMs, 700.0)
	assert.Less(t, data.StrafeMs, 1600.0)
}

func TestDeadHostilesAreSkipped(t *testing.T) {
	w, session := newTestWorld(t)
	drone := factory.AcquireHostile(w, config.KindSwarm, 4300, 4000)
	factory.KillHostile(w, drone)

	tick(session, 100)
	run(w, UpdateHostiles)

	assert.Equal(t, 4300.0, components.Position.Get(drone).X)
	assert.False(t, components.Visual.Get(drone).Visible)
}
