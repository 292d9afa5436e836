package components

import (
	"github.com/automoto/dronefall/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// VisualData is what the core tells a presentation adapter about an
// entity. How it is drawn is up to the adapter.
type VisualData struct {
	Rotation float64
	Alpha    float64
	Visible  bool
}

// FadeData drives a cosmetic alpha tween on effect entities.
type FadeData struct {
	Tween  *gween.Tween
	Kind   config.HostileKind // what was destroyed
	Radius float64
}

var Visual = donburi.NewComponentType[VisualData]()
var Fade = donburi.NewComponentType[FadeData]()
