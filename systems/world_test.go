package systems

import (
	"testing"

	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/config"
	"github.com/automoto/dronefall/systems/factory"
	"github.com/automoto/dronefall/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testViewW = 1280
	testViewH = 720
)

// newTestWorld builds a session world with the player at the centre and a
// 1280x720 window around it.
func newTestWorld(t *testing.T, tune ...func(*config.Config)) (donburi.World, *donburi.Entry) {
	t.Helper()
	c := config.Default()
	for _, fn := range tune {
		fn(c)
	}
	require.NoError(t, c.Validate())

	w := donburi.NewWorld()
	session := factory.CreateSession(w, c, 7)
	factory.CreatePlayer(w, c)

	camera := components.Camera.Get(session)
	camera.ViewW, camera.ViewH = testViewW, testViewH
	run(w, UpdateCamera)
	return w, session
}

// run executes systems once, in order, against w.
func run(w donburi.World, systems ...ecs.System) {
	e := ecs.NewECS(w)
	for _, system := range systems {
		system(e)
	}
}

// tick sets the clock for one step of dtMs.
func tick(session *donburi.Entry, dtMs float64) {
	clock := components.Clock.Get(session)
	clock.DtMs = dtMs
	clock.NowMs += dtMs
	clock.ElapsedMs += dtMs
}

func playerOf(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(w)
	require.True(t, ok)
	return entry
}

func movePlayer(t *testing.T, w donburi.World, x, y float64) {
	t.Helper()
	pos := components.Position.Get(playerOf(t, w))
	pos.X, pos.Y = x, y
	run(w, UpdateCamera)
}

func liveHostiles(w donburi.World, session *donburi.Entry) []*donburi.Entry {
	var out []*donburi.Entry
	for _, e := range components.Roster.Get(session).Hostiles {
		entry := w.Entry(e)
		if components.Hostile.Get(entry).Alive {
			out = append(out, entry)
		}
	}
	return out
}

// place teleports a shot without sweeping the path it skipped.
func place(shot *donburi.Entry, x, y float64) {
	pos := components.Position.Get(shot)
	pos.X, pos.Y = x, y
	data := components.Projectile.Get(shot)
	data.PrevX, data.PrevY = x, y
}

func fire(w donburi.World, x, y, tx, ty float64, pierce int) *donburi.Entry {
	return factory.SpawnProjectile(w, factory.ShotParams{
		Owner:   components.OwnerPlayer,
		OriginX: x,
		OriginY: y,
		TargetX: tx,
		TargetY: ty,
		Speed:   1400,
		Damage:  3,
		Pierce:  pierce,
		Radius:  6,
	})
}
