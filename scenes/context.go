package scenes

import (
	"github.com/automoto/dronefall/config"
	"github.com/automoto/dronefall/persistence"
	"github.com/automoto/dronefall/sfx"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// Context is what every scene shares for the lifetime of the process.
type Context struct {
	Logger  *log.Logger
	Tuning  *config.Config
	Store   *persistence.Store
	Display persistence.DisplaySettings

	ScreenWidth  int
	ScreenHeight int

	// Seed for the next session, zero picks one from the clock.
	Seed uint64
}

// SaveDisplay applies and persists the display settings.
func (c *Context) SaveDisplay() {
	ebiten.SetFullscreen(c.Display.Fullscreen)
	sfx.SetMuted(c.Display.Muted)
	if err := c.Store.Save(c.Display); err != nil {
		c.Logger.Warn("could not save display settings", "err", err)
	}
}
