package components

import "github.com/yohamta/donburi"

// PlayerData is the single player unit's bookkeeping. Position, velocity and
// health live in their own components.
type PlayerData struct {
	Speed float64 // units per second at full intent

	// Velocity intent sampled this tick, unit length or zero.
	IntentX float64
	IntentY float64

	Kills     int
	FireAccMs float64 // autofire accumulator, carries residual ms
	Downed    bool    // health reached zero
}

var Player = donburi.NewComponentType[PlayerData]()
