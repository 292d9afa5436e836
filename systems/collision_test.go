package systems

import (
	"testing"

	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/config"
	"github.com/automoto/dronefall/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestZeroPierceDiesOnFirstHit(t *testing.T) {
	w, session := newTestWorld(t)
	first := factory.AcquireHostile(w, config.KindSwarm, 4100, 4000)
	second := factory.AcquireHostile(w, config.KindSwarm, 4100, 4000)

	shot := fire(w, 4100, 4000, 4200, 4000, 0)
	tick(session, 16)
	run(w, ResolveCollisions)

	assert.False(t, components.Projectile.Get(shot).Alive)
	assert.Equal(t, 13.0, components.Health.Get(first).Current)
	assert.Equal(t, 16.0, components.Health.Get(second).Current, "iteration stops at the first hit")
}

func TestPierceOneSurvivesFirstHit(t *testing.T) {
	w, session := newTestWorld(t)
	first := factory.AcquireHostile(w, config.KindSwarm, 4100, 4000)

	shot := fire(w, 4100, 4000, 4200, 4000, 1)
	tick(session, 16)
	run(w, ResolveCollisions)

	data := components.Projectile.Get(shot)
	assert.True(t, data.Alive)
	assert.Equal(t, 0, data.Pierce)
	assert.Equal(t, 13.0, components.Health.Get(first).Current)

	// Move the shot onto a second hostile.
	second := factory.AcquireHostile(w, config.KindSwarm, 4300, 4000)
	place(shot, 4300, 4000)
	run(w, ResolveCollisions)

	assert.False(t, data.Alive)
	assert.Equal(t, 13.0, components.Health.Get(second).Current)
}

func TestPierceOneHitsTwoStackedHostiles(t *testing.T) {
	w, session := newTestWorld(t)
	first := factory.AcquireHostile(w, config.KindSwarm, 4100, 4000)
	second := factory.AcquireHostile(w, config.KindSwarm, 4105, 4000)

	shot := fire(w, 4102, 4000, 4200, 4000, 1)
	tick(session, 16)
	run(w, ResolveCollisions)

	assert.False(t, components.Projectile.Get(shot).Alive)
	assert.Equal(t, 13.0, components.Health.Get(first).Current)
	assert.Equal(t, 13.0, components.Health.Get(second).Current)
}

func TestMissLeavesEverythingUntouched(t *testing.T) {
	w, session := newTestWorld(t)
	hostile := factory.AcquireHostile(w, config.KindSwarm, 4100, 4000)

	// Radii sum to 17.
	shot := fire(w, 4100, 4017, 4200, 4017, 0)
	tick(session, 16)
	run(w, ResolveCollisions)

	assert.True(t, components.Projectile.Get(shot).Alive)
	assert.Equal(t, 16.0, components.Health.Get(hostile).Current)
}

func TestKillingSwarmScenario(t *testing.T) {
	w, session := newTestWorld(t)
	player := components.Player.Get(playerOf(t, w))
	hostile := factory.AcquireHostile(w, config.KindSwarm, 4100, 4000)
	components.Hostile.Get(hostile).Speed = 220

	var killed []HostileKilledEvent
	HostileKilled.Subscribe(w, func(_ donburi.World, ev HostileKilledEvent) {
		killed = append(killed, ev)
	})

	for hit := 1; hit <= 6; hit++ {
		before := len(liveHostiles(w, session))
		fire(w, 4000, 4000, 4100, 4000, 0)
		components.Position.Get(w.Entry(components.Roster.Get(session).PlayerShots[0])).X = 4100

		tick(session, 16)
		run(w, ResolveCollisions)
		run(w, PurgeDead)

		data := components.Hostile.Get(hostile)
		if hit < 6 {
			assert.True(t, data.Alive, "hit %d", hit)
			assert.Equal(t, 16-3*float64(hit), components.Health.Get(hostile).Current)
			assert.Equal(t, 0, player.Kills)
			continue
		}
		assert.LessOrEqual(t, components.Health.Get(hostile).Current, 0.0)
		assert.False(t, data.Alive)
		assert.True(t, data.Pooled)
		assert.Equal(t, 1, player.Kills)
		assert.Len(t, liveHostiles(w, session), before-1)
		assert.Empty(t, components.Roster.Get(session).Hostiles)
	}

	FlushEvents(w)
	require.Len(t, killed, 1)
	assert.Equal(t, config.KindSwarm, killed[0].Kind)
	assert.Equal(t, 1, killed[0].Kills)
	assert.Len(t, components.Roster.Get(session).Effects, 1, "a wreck is left behind")
}

func TestShotHitsHostileItSweptPast(t *testing.T) {
	w, session := newTestWorld(t)
	// 12 units off the line of fire, so only the swept path comes within
	// the radius sum of 17; the end point after one step is 17.3 away.
	hostile := factory.AcquireHostile(w, config.KindSwarm, 4010, 4012)

	shot := fire(w, 4000, 4000, 4100, 4000, 0)
	tick(session, 16)
	run(w, UpdateProjectiles, ResolveCollisions)

	assert.InDelta(t, 4022.4, components.Position.Get(shot).X, 1e-9)
	assert.False(t, components.Projectile.Get(shot).Alive)
	assert.Equal(t, 13.0, components.Health.Get(hostile).Current)
}

func TestAutofireKillsSwarmTouchingPlayer(t *testing.T) {
	w, session := newTestWorld(t)
	hostile := factory.AcquireHostile(w, config.KindSwarm, 4005, 4000)
	player := components.Player.Get(playerOf(t, w))

	for i := 0; i < 125 && player.Kills == 0; i++ {
		tick(session, 16)
		run(w, UpdateAutofire, UpdateProjectiles, ResolveCollisions, PurgeDead)
	}

	assert.LessOrEqual(t, components.Health.Get(hostile).Current, 0.0)
	assert.False(t, components.Hostile.Get(hostile).Alive)
	assert.Equal(t, 1, player.Kills)
}

func TestHostileShotHitsPlayer(t *testing.T) {
	w, session := newTestWorld(t)
	shot := factory.SpawnProjectile(w, factory.ShotParams{
		Owner:   components.OwnerHostile,
		OriginX: 4010,
		OriginY: 4000,
		TargetX: 4000,
		TargetY: 4000,
		Speed:   1200,
		Damage:  8,
		Radius:  6,
	})

	var hits []PlayerHitEvent
	PlayerHit.Subscribe(w, func(_ donburi.World, ev PlayerHitEvent) { hits = append(hits, ev) })

	tick(session, 16)
	run(w, ResolveCollisions)
	FlushEvents(w)

	assert.False(t, components.Projectile.Get(shot).Alive)
	assert.Equal(t, 92.0, components.Health.Get(playerOf(t, w)).Current)
	require.Len(t, hits, 1)
	assert.Equal(t, PlayerHitEvent{Damage: 8, Health: 92}, hits[0])
}

func TestPlayerHealthNeverNegative(t *testing.T) {
	w, _ := newTestWorld(t)
	playerEntry := playerOf(t, w)

	var downed int
	PlayerDowned.Subscribe(w, func(_ donburi.World, _ PlayerDownedEvent) { downed++ })

	DamagePlayer(w, playerEntry, 250)
	DamagePlayer(w, playerEntry, 10)
	FlushEvents(w)

	assert.Equal(t, 0.0, components.Health.Get(playerEntry).Current)
	assert.True(t, components.Player.Get(playerEntry).Downed)
	assert.Equal(t, 1, downed)
}

func TestContactDamageScalesWithTimeAndContacts(t *testing.T) {
	w, session := newTestWorld(t)
	factory.AcquireHostile(w, config.KindSwarm, 4000, 4000)
	factory.AcquireHostile(w, config.KindSwarm, 4020, 4000) // 20 < 11+10
	factory.AcquireHostile(w, config.KindSwarm, 4022, 4000) // just out of reach
	factory.AcquireHostile(w, config.KindHunter, 4000, 4000)

	tick(session, 500)
	run(w, ApplyContactDamage)
	// 2 drones x 6/s x 0.5s
	assert.InDelta(t, 94, components.Health.Get(playerOf(t, w)).Current, 1e-9)

	tick(session, 250)
	run(w, ApplyContactDamage)
	assert.InDelta(t, 91, components.Health.Get(playerOf(t, w)).Current, 1e-9)
}
