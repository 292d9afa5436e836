package archetypes

import (
	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/tags"
	"github.com/yohamta/donburi"
)

var (
	Session = newArchetype(
		tags.Session,
		components.Clock,
		components.Input,
		components.Camera,
		components.Roster,
		components.Pool,
		components.Director,
		components.Random,
		components.Settings,
	)
	Space = newArchetype(
		components.Space,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Position,
		components.Velocity,
		components.Health,
		components.Visual,
	)
	// Swarm and Hunter entities keep every component for their whole life,
	// pooling only flips flags so the archetype never changes.
	Swarm = newArchetype(
		tags.Hostile,
		components.Hostile,
		components.Position,
		components.Velocity,
		components.Health,
		components.Visual,
		components.Object,
	)
	Hunter = newArchetype(
		tags.Hostile,
		components.Hostile,
		components.Hunter,
		components.Position,
		components.Velocity,
		components.Health,
		components.Visual,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Position,
		components.Velocity,
		components.Visual,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Position,
		components.Visual,
		components.Fade,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
