package components

import (
	"math/rand/v2"

	"github.com/automoto/dronefall/config"
	"github.com/yohamta/donburi"
)

// ClockData carries the timing of the tick being simulated.
type ClockData struct {
	DtMs      float64 // delta of this tick
	NowMs     float64 // absolute time supplied by the adapter
	ElapsedMs float64 // session time, sum of all deltas
	Ticks     uint64
	FPS       float64 // smoothed frame rate derived from deltas
}

// InputData is the sampled movement intent for this tick.
type InputData struct {
	X, Y float64
}

// RosterData holds the live collections in insertion order. Collision
// resolution iterates them in this order.
type RosterData struct {
	Hostiles     []donburi.Entity
	PlayerShots  []donburi.Entity
	HostileShots []donburi.Entity
	Effects      []donburi.Entity
}

// PoolData holds inactive entities ready for reuse, keyed by hostile kind
// and by projectile owner.
type PoolData struct {
	Hostiles     [config.HostileKindCount][]donburi.Entity
	PlayerShots  []donburi.Entity
	HostileShots []donburi.Entity
}

// DirectorData is the spawn director's cadence state.
type DirectorData struct {
	AccMs     float64 // carries residual ms between ticks
	Saturated bool    // population cap reached on the last attempt
}

type RandomData struct {
	*rand.Rand
}

type SettingsData struct {
	*config.Config
}

var (
	Clock    = donburi.NewComponentType[ClockData]()
	Input    = donburi.NewComponentType[InputData]()
	Roster   = donburi.NewComponentType[RosterData]()
	Pool     = donburi.NewComponentType[PoolData]()
	Director = donburi.NewComponentType[DirectorData]()
	Random   = donburi.NewComponentType[RandomData]()
	Settings = donburi.NewComponentType[SettingsData]()
)
