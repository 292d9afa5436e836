package factory

import (
	"github.com/automoto/dronefall/archetypes"
	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/config"
	"github.com/automoto/dronefall/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateWreck leaves a fading husk where a hostile died. It is cosmetic only
// and is removed once its fade finishes.
func CreateWreck(w donburi.World, kind config.HostileKind, x, y, rotation, radius float64) *donburi.Entry {
	session, ok := tags.Session.First(w)
	if !ok {
		return nil
	}
	c := components.Settings.Get(session).Config
	if c.Effects.DeathFadeMs <= 0 {
		return nil
	}

	wreck := archetypes.Effect.Spawn(w)
	components.Position.SetValue(wreck, components.PositionData{X: x, Y: y})
	components.Visual.SetValue(wreck, components.VisualData{
		Rotation: rotation,
		Alpha:    1,
		Visible:  true,
	})
	// Durations are in milliseconds, matching the tick delta fed to Update.
	components.Fade.SetValue(wreck, components.FadeData{
		Tween:  gween.New(1, 0, float32(c.Effects.DeathFadeMs), ease.Linear),
		Kind:   kind,
		Radius: radius,
	})

	roster := components.Roster.Get(session)
	roster.Effects = append(roster.Effects, wreck.Entity())
	return wreck
}
