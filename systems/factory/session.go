package factory

import (
	"math/rand/v2"

	"github.com/automoto/dronefall/archetypes"
	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSession adds the per-session singletons to w: clock, camera, rosters,
// pools, random source, tuning and the neighbour grid. All randomness in the
// simulation is drawn from the seeded source created here.
func CreateSession(w donburi.World, c *config.Config, seed uint64) *donburi.Entry {
	session := archetypes.Session.Spawn(w)

	components.Settings.SetValue(session, components.SettingsData{Config: c})
	components.Random.SetValue(session, components.RandomData{
		Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	})
	components.Camera.SetValue(session, components.CameraData{})
	components.Roster.SetValue(session, components.RosterData{})
	components.Pool.SetValue(session, components.PoolData{})

	CreateSpace(w, int(c.World.Width), int(c.World.Height), c.Neighbors.CellSize, c.Neighbors.CellSize)
	return session
}

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}
