package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load reads a TOML tuning file and overlays it on the defaults. Keys that
// are absent keep their default value; keys that do not map to a field are
// reported as an error so typos do not silently fall back.
func Load(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("decode tuning %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("tuning %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("tuning %s: %w", path, err)
	}
	return c, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.Player.Speed >= 0, "player speed must not be negative")
	check(c.Player.Health > 0, "player health must be positive")
	check(c.Weapon.FireRate > 0, "weapon fire_rate must be positive, got %v", c.Weapon.FireRate)
	check(c.Weapon.Pierce >= 0, "weapon pierce must not be negative")
	check(c.Swarm.Health > 0 && c.Hunter.Health > 0, "hostile health must be positive")
	check(c.Swarm.SeparationRadius > 0, "swarm separation_radius must be positive")
	check(c.Hunter.MinDistance < c.Hunter.MaxDistance, "hunter min_distance must be below max_distance")
	check(c.Hunter.BurstCount > 0, "hunter burst_count must be positive")
	check(c.Spawn.IntervalMs > 0, "spawn interval_ms must be positive, got %v", c.Spawn.IntervalMs)
	check(c.Spawn.MaxAlive >= 0 && c.Spawn.HunterCap >= 0, "spawn caps must not be negative")
	check(c.Spawn.DoubleChance >= 0 && c.Spawn.DoubleChance <= 1, "spawn double_chance must be within [0, 1]")
	check(c.Spawn.HunterChanceCeiling >= 0 && c.Spawn.HunterChanceCeiling <= 1, "spawn hunter_chance_ceiling must be within [0, 1]")
	check(c.Spawn.Pattern == SpawnEdge || c.Spawn.Pattern == SpawnRing, "spawn pattern %q is not one of edge, ring", c.Spawn.Pattern)
	check(c.Combat.ProjectileTTLMs > 0, "combat projectile_ttl_ms must be positive")
	check(c.Neighbors.CellSize > 0, "neighbors cell_size must be positive")
	check(c.Neighbors.MaxSamples >= 0, "neighbors max_samples must not be negative")

	return errors.Join(errs...)
}
