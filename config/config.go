package config

// WorldConfig describes the bounded arena.
type WorldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed           float64 `toml:"speed"`  // units per second at full intent
	Health          float64 `toml:"health"` // starting and maximum HP
	CollisionRadius float64 `toml:"collision_radius"`
}

// WeaponConfig contains the player's autofire weapon
type WeaponConfig struct {
	Damage       float64 `toml:"damage"`
	FireRate     float64 `toml:"fire_rate"` // shots per second
	BulletSpeed  float64 `toml:"bullet_speed"`
	Pierce       int     `toml:"pierce"`
	BulletRadius float64 `toml:"bullet_radius"`
	TargetMargin float64 `toml:"target_margin"` // viewport padding for target visibility
}

// SwarmConfig contains the melee drone configuration
type SwarmConfig struct {
	Health     float64 `toml:"health"`
	Speed      float64 `toml:"speed"`
	Radius     float64 `toml:"radius"`
	ContactDPS float64 `toml:"contact_dps"`

	// Steering
	OrbitAmplitude   float64 `toml:"orbit_amplitude"`   // fraction of the unit seek vector
	OrbitFrequency   float64 `toml:"orbit_frequency"`   // radians per second of session time
	SeparationRadius float64 `toml:"separation_radius"` // neighbours closer than this push away
	SeparationWeight float64 `toml:"separation_weight"`
}

// HunterConfig contains the ranged burst attacker configuration
type HunterConfig struct {
	Health float64 `toml:"health"`
	Speed  float64 `toml:"speed"`
	Radius float64 `toml:"radius"`

	// Distance bands
	MinDistance float64 `toml:"min_distance"` // closer than this: retreat
	MaxDistance float64 `toml:"max_distance"` // farther than this: approach

	RetreatScale  float64 `toml:"retreat_scale"`
	ApproachScale float64 `toml:"approach_scale"`
	StrafeScale   float64 `toml:"strafe_scale"`

	StrafeMinMs   float64 `toml:"strafe_min_ms"`
	StrafeRangeMs float64 `toml:"strafe_range_ms"`

	// Burst
	InitialCooldownMs      float64 `toml:"initial_cooldown_ms"`
	InitialCooldownRangeMs float64 `toml:"initial_cooldown_range_ms"`
	CooldownMs             float64 `toml:"cooldown_ms"`
	TelegraphMs            float64 `toml:"telegraph_ms"`
	PulseFrequency         float64 `toml:"pulse_frequency"` // radians per ms of the telegraph blink
	BurstCount             int     `toml:"burst_count"`
	BurstSpread            float64 `toml:"burst_spread"` // radians between adjacent shots
	BulletSpeed            float64 `toml:"bullet_speed"`
	BulletDamage           float64 `toml:"bullet_damage"`
	BulletRadius           float64 `toml:"bullet_radius"`
	FireMargin             float64 `toml:"fire_margin"` // viewport padding outside which shots are dropped
}

// SpawnConfig contains the spawn director configuration
type SpawnConfig struct {
	IntervalMs   float64 `toml:"interval_ms"`
	MaxAlive     int     `toml:"max_alive"`
	DoubleChance float64 `toml:"double_chance"`

	Pattern    SpawnPattern `toml:"pattern"`
	EdgeMargin float64      `toml:"edge_margin"`
	RingRadius float64      `toml:"ring_radius"`
	RingJitter float64      `toml:"ring_jitter"`

	HunterCap           int     `toml:"hunter_cap"`
	HunterBaseChance    float64 `toml:"hunter_base_chance"`
	HunterChancePerMin  float64 `toml:"hunter_chance_per_min"`
	HunterChanceCeiling float64 `toml:"hunter_chance_ceiling"`
}

// CombatConfig contains projectile lifetime and culling values
type CombatConfig struct {
	ProjectileTTLMs float64 `toml:"projectile_ttl_ms"`
	CullPadding     float64 `toml:"cull_padding"` // camera-relative padding beyond which projectiles die
}

// NeighborConfig controls separation sampling
type NeighborConfig struct {
	CellSize   int `toml:"cell_size"`
	MaxSamples int `toml:"max_samples"`
}

// EffectsConfig contains cosmetic effect timings
type EffectsConfig struct {
	DeathFadeMs float64 `toml:"death_fade_ms"`
}

// Config groups every tuning value of a simulation session.
type Config struct {
	World     WorldConfig    `toml:"world"`
	Player    PlayerConfig   `toml:"player"`
	Weapon    WeaponConfig   `toml:"weapon"`
	Swarm     SwarmConfig    `toml:"swarm"`
	Hunter    HunterConfig   `toml:"hunter"`
	Spawn     SpawnConfig    `toml:"spawn"`
	Combat    CombatConfig   `toml:"combat"`
	Neighbors NeighborConfig `toml:"neighbors"`
	Effects   EffectsConfig  `toml:"effects"`
}

// Default returns a fresh configuration with the stock tuning. Each call
// returns an independent value so sessions never share mutable config.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Width:  8000,
			Height: 8000,
		},
		Player: PlayerConfig{
			Speed:           320,
			Health:          100,
			CollisionRadius: 10,
		},
		Weapon: WeaponConfig{
			Damage:       3,
			FireRate:     4.0,
			BulletSpeed:  1400,
			Pierce:       0,
			BulletRadius: 6,
			TargetMargin: 80,
		},
		Swarm: SwarmConfig{
			Health:     16,
			Speed:      320,
			Radius:     11,
			ContactDPS: 6,

			OrbitAmplitude:   0.25,
			OrbitFrequency:   1.4,
			SeparationRadius: 54,
			SeparationWeight: 0.9,
		},
		Hunter: HunterConfig{
			Health: 40,
			Speed:  240,
			Radius: 12,

			MinDistance: 230,
			MaxDistance: 380,

			RetreatScale:  1.05,
			ApproachScale: 0.75,
			StrafeScale:   0.40,

			StrafeMinMs:   700,
			StrafeRangeMs: 900,

			InitialCooldownMs:      900,
			InitialCooldownRangeMs: 900,
			CooldownMs:             2200,
			TelegraphMs:            300,
			PulseFrequency:         0.02,
			BurstCount:             3,
			BurstSpread:            0.18,
			BulletSpeed:            1200,
			BulletDamage:           8,
			BulletRadius:           6,
			FireMargin:             100,
		},
		Spawn: SpawnConfig{
			IntervalMs:   360,
			MaxAlive:     90,
			DoubleChance: 0.35,

			Pattern:    SpawnEdge,
			EdgeMargin: 40,
			RingRadius: 720,
			RingJitter: 220,

			HunterCap:           4,
			HunterBaseChance:    0.10,
			HunterChancePerMin:  0.02,
			HunterChanceCeiling: 0.22,
		},
		Combat: CombatConfig{
			ProjectileTTLMs: 2200,
			CullPadding:     420,
		},
		Neighbors: NeighborConfig{
			CellSize:   64,
			MaxSamples: 6,
		},
		Effects: EffectsConfig{
			DeathFadeMs: 90,
		},
	}
}

// HunterChance returns the probability that a spawn becomes a Hunter after
// elapsedMs of session time, before the concurrent cap is applied.
func (s SpawnConfig) HunterChance(elapsedMs float64) float64 {
	minutes := elapsedMs / 60000
	chance := s.HunterBaseChance + minutes*s.HunterChancePerMin
	if chance > s.HunterChanceCeiling {
		return s.HunterChanceCeiling
	}
	return chance
}

// FireIntervalMs returns the autofire period in milliseconds.
func (w WeaponConfig) FireIntervalMs() float64 {
	return 1000 / w.FireRate
}
