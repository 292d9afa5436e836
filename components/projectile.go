package components

import "github.com/yohamta/donburi"

// ProjectileOwner separates the two projectile streams; they never share a
// pool.
type ProjectileOwner int

const (
	OwnerPlayer ProjectileOwner = iota
	OwnerHostile
)

type ProjectileData struct {
	Owner  ProjectileOwner
	Damage float64
	Pierce int // additional hits left after the next one
	Radius float64
	LifeMs float64

	// Position before the last move. Hits are tested along the swept
	// segment from here to the current position.
	PrevX, PrevY float64

	Alive  bool
	Pooled bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
