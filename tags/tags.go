package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Hostile    = donburi.NewTag().SetName("Hostile")
	Projectile = donburi.NewTag().SetName("Projectile")
	Effect     = donburi.NewTag().SetName("Effect")
	Session    = donburi.NewTag().SetName("Session")
)

// Resolv tags for the neighbour grid
const (
	ResolvHostile = "hostile"
)
