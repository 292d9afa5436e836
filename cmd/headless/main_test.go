package main

import (
	"io"
	"testing"

	"github.com/automoto/dronefall/config"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestRunStopsWhenDowned(t *testing.T) {
	tuning := config.Default()
	tuning.Player.Health = 1
	tuning.Weapon.Damage = 0
	tuning.Spawn.IntervalMs = 50
	tuning.Spawn.Pattern = config.SpawnRing
	tuning.Spawn.RingRadius = 60
	tuning.Spawn.RingJitter = 0

	r := run(log.New(io.Discard), tuning, 3, 60*60, 1000.0/60, 0)
	assert.True(t, r.Stats.Downed)
	assert.Less(t, r.Ticks, 60*60)
}

func TestRunIsReproducible(t *testing.T) {
	a := run(log.New(io.Discard), config.Default(), 9, 600, 1000.0/60, 0.5)
	b := run(log.New(io.Discard), config.Default(), 9, 600, 1000.0/60, 0.5)
	assert.Equal(t, a, b)
}
