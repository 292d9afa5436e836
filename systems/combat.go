package systems

import (
	"math"

	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/systems/factory"
	"github.com/automoto/dronefall/tags"
	"github.com/yohamta/donburi"
)

// DamageHostile subtracts amount from a live hostile's health. When health
// reaches zero the hostile dies on the spot and leaves a fading wreck.
// Reports whether this call killed it.
func DamageHostile(w donburi.World, hostile *donburi.Entry, amount float64) bool {
	data := components.Hostile.Get(hostile)
	if !data.Alive {
		return false
	}
	health := components.Health.Get(hostile)
	health.Current -= amount
	if health.Current > 0 {
		return false
	}

	factory.KillHostile(w, hostile)
	pos := components.Position.Get(hostile)
	rotation := components.Visual.Get(hostile).Rotation
	factory.CreateWreck(w, data.Kind, pos.X, pos.Y, rotation, data.Radius)
	return true
}

// DamagePlayer subtracts amount from the player's health, never going below
// zero. The first time health hits zero the player is downed.
func DamagePlayer(w donburi.World, playerEntry *donburi.Entry, amount float64) {
	health := components.Health.Get(playerEntry)
	health.Current = math.Max(0, health.Current-amount)

	player := components.Player.Get(playerEntry)
	if health.Current > 0 || player.Downed {
		return
	}
	player.Downed = true

	var elapsed float64
	if session, ok := tags.Session.First(w); ok {
		elapsed = components.Clock.Get(session).ElapsedMs
	}
	PlayerDowned.Publish(w, PlayerDownedEvent{Kills: player.Kills, ElapsedMs: elapsed})
}
