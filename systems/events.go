package systems

import (
	"github.com/automoto/dronefall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// HostileKilledEvent is published when a player projectile kills a hostile.
type HostileKilledEvent struct {
	Entity donburi.Entity
	Kind   config.HostileKind
	X, Y   float64
	Kills  int // player kill count including this one
}

// PlayerHitEvent is published for every hostile projectile that hits the
// player.
type PlayerHitEvent struct {
	Damage float64
	Health float64 // remaining after the hit
}

// HunterFiredEvent is published when a Hunter releases a burst.
type HunterFiredEvent struct {
	Entity donburi.Entity
	X, Y   float64
	Shots  int
}

// PlayerDownedEvent is published once, on the tick the player's health
// reaches zero.
type PlayerDownedEvent struct {
	Kills     int
	ElapsedMs float64
}

var (
	HostileKilled = events.NewEventType[HostileKilledEvent]()
	PlayerHit     = events.NewEventType[PlayerHitEvent]()
	HunterFired   = events.NewEventType[HunterFiredEvent]()
	PlayerDowned  = events.NewEventType[PlayerDownedEvent]()
)

// FlushEvents delivers every queued event to its subscribers.
func FlushEvents(w donburi.World) {
	HostileKilled.ProcessEvents(w)
	PlayerHit.ProcessEvents(w)
	HunterFired.ProcessEvents(w)
	PlayerDowned.ProcessEvents(w)
}
