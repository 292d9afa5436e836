package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/dronefall/config"
	"github.com/automoto/dronefall/sfx"
	"github.com/automoto/dronefall/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScene displays the main menu
type MenuScene struct {
	ctx          *Context
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once

	shouldStart bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(ctx *Context, sc SceneChanger) *MenuScene {
	return &MenuScene{ctx: ctx, sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	if ms.menuUI == nil {
		return
	}
	ms.menuUI.Update()

	if ms.shouldStart {
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.ctx, ms.sceneChanger))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	menuUI, err := ui.NewMenuUI(
		ms.ctx.Display.Fullscreen,
		func() {
			sfx.Play(config.SoundMenuSelect)
			ms.shouldStart = true
		},
		ms.toggleFullscreen,
		ms.sceneChanger.Quit,
	)
	if err != nil {
		ms.ctx.Logger.Error("could not build menu, starting directly", "err", err)
		ms.shouldStart = true
		return
	}
	ms.menuUI = menuUI
}

func (ms *MenuScene) toggleFullscreen() {
	ms.ctx.Display.Fullscreen = !ms.ctx.Display.Fullscreen
	ms.ctx.SaveDisplay()
	ms.menuUI.SetFullscreen(ms.ctx.Display.Fullscreen)
}
