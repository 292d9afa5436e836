package factory

import (
	"github.com/automoto/dronefall/archetypes"
	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/config"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player at the centre of the world.
func CreatePlayer(w donburi.World, c *config.Config) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Player.SetValue(player, components.PlayerData{
		Speed: c.Player.Speed,
	})
	components.Position.SetValue(player, components.PositionData{
		X: c.World.Width / 2,
		Y: c.World.Height / 2,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: c.Player.Health,
		Max:     c.Player.Health,
	})
	components.Visual.SetValue(player, components.VisualData{
		Alpha:   1,
		Visible: true,
	})

	return player
}
