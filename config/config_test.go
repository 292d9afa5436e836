package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValidAndIndependent(t *testing.T) {
	a := Default()
	require.NoError(t, a.Validate())

	b := Default()
	b.Swarm.Speed = 1
	assert.Equal(t, 320.0, a.Swarm.Speed)
}

func TestHunterChanceCurve(t *testing.T) {
	s := Default().Spawn
	assert.InDelta(t, 0.10, s.HunterChance(0), 1e-12)
	assert.InDelta(t, 0.14, s.HunterChance(2*60000), 1e-12)
	assert.InDelta(t, 0.22, s.HunterChance(6*60000), 1e-12)
	assert.InDelta(t, 0.22, s.HunterChance(60*60000), 1e-12)
}

func TestFireInterval(t *testing.T) {
	assert.InDelta(t, 250, Default().Weapon.FireIntervalMs(), 1e-12)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeTuning(t, `
[spawn]
pattern = "ring"
max_alive = 40

[hunter]
burst_spread = 0.25
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, SpawnRing, c.Spawn.Pattern)
	assert.Equal(t, 40, c.Spawn.MaxAlive)
	assert.Equal(t, 0.25, c.Hunter.BurstSpread)
	// untouched keys keep their defaults
	assert.Equal(t, 360.0, c.Spawn.IntervalMs)
	assert.Equal(t, 2200.0, c.Hunter.CooldownMs)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeTuning(t, `
[swarm]
sped = 10
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "swarm.sped")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeTuning(t, `
[spawn]
pattern = "spiral"

[weapon]
fire_rate = 0
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spiral")
	assert.Contains(t, err.Error(), "fire_rate")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "swarm", KindSwarm.String())
	assert.Equal(t, "hunter", KindHunter.String())
	assert.Equal(t, "telegraph", StateTelegraph.String())
	assert.Equal(t, "StateID(42)", StateID(42).String())
}
