package config

import "fmt"

// HostileKind identifies an enemy variant. Pools are keyed by kind.
type HostileKind int

const (
	KindSwarm  HostileKind = iota // fast melee drone
	KindHunter                    // ranged burst attacker

	HostileKindCount // Must be last - used for array sizing
)

func (k HostileKind) String() string {
	switch k {
	case KindSwarm:
		return "swarm"
	case KindHunter:
		return "hunter"
	}
	return fmt.Sprintf("HostileKind(%d)", int(k))
}

// StateID identifies a Hunter behaviour state.
type StateID int

const (
	StateNone StateID = iota - 1
	StateApproach
	StateRetreat
	StateStrafe
	StateTelegraph
	StateFire // resolves within the tick it is entered
)

var stateNames = map[StateID]string{
	StateNone:      "none",
	StateApproach:  "approach",
	StateRetreat:   "retreat",
	StateStrafe:    "strafe",
	StateTelegraph: "telegraph",
	StateFire:      "fire",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("StateID(%d)", int(s))
}

// SpawnPattern selects where the spawn director places new hostiles.
type SpawnPattern string

const (
	SpawnEdge SpawnPattern = "edge" // just outside a random viewport side
	SpawnRing SpawnPattern = "ring" // on a ring around the player
)
