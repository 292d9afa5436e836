package components

import (
	"github.com/automoto/dronefall/config"
	"github.com/yohamta/donburi"
)

type HostileData struct {
	Kind   config.HostileKind
	Radius float64
	Speed  float64
	Seed   float64 // desynchronizes orbit phase between instances

	ContactDPS float64 // damage per second while touching the player (Swarm only)

	Alive  bool
	Pooled bool // sitting in its kind pool, must be reset before reuse
}

// HunterData is the ranged attacker's behaviour state. Only Hunter entities
// carry it.
type HunterData struct {
	State config.StateID

	CooldownMs  float64 // counts down every tick, gates the next telegraph
	TelegraphMs float64 // > 0 while telegraphing
	PendingFire bool

	StrafeDir float64 // -1 or 1
	StrafeMs  float64

	AimX, AimY float64 // last aim direction, unit length
}

var Hostile = donburi.NewComponentType[HostileData]()
var Hunter = donburi.NewComponentType[HunterData]()
