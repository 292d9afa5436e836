package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/dronefall/config"
	"github.com/automoto/dronefall/controls"
	"github.com/automoto/dronefall/render"
	"github.com/automoto/dronefall/sfx"
	"github.com/automoto/dronefall/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// maxFrameMs caps a single step after the window stalls.
const maxFrameMs = 100

const (
	hitFlashStrength = 0.7
	hitFlashSeconds  = 0.3
)

// WorldScene runs one simulation session.
type WorldScene struct {
	ctx          *Context
	sceneChanger SceneChanger
	once         sync.Once

	sim      *sim.Simulation
	controls *controls.Controls
	renderer *render.Renderer
	stats    sim.Stats

	flash     *gween.Tween
	flashLeft float32

	started time.Time
	last    time.Time
}

func NewWorldScene(ctx *Context, sc SceneChanger) *WorldScene {
	return &WorldScene{ctx: ctx, sceneChanger: sc}
}

// PublishStats implements sim.HUD.
func (ws *WorldScene) PublishStats(st sim.Stats) {
	ws.stats = st
}

// ViewSize implements sim.Viewport.
func (ws *WorldScene) ViewSize() (float64, float64) {
	return float64(ws.ctx.ScreenWidth), float64(ws.ctx.ScreenHeight)
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.controls.Update()

	if ws.controls.JustPressed(controls.ActionBack) {
		ws.sim.Close()
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.ctx, ws.sceneChanger))
		return
	}
	if ws.controls.JustPressed(controls.ActionToggleHUD) {
		ws.ctx.Display.ShowHUD = !ws.ctx.Display.ShowHUD
		ws.ctx.SaveDisplay()
	}
	if ws.controls.JustPressed(controls.ActionFullscreen) {
		ws.ctx.Display.Fullscreen = !ws.ctx.Display.Fullscreen
		ws.ctx.SaveDisplay()
	}
	if ws.controls.JustPressed(controls.ActionMute) {
		ws.ctx.Display.Muted = !ws.ctx.Display.Muted
		ws.ctx.SaveDisplay()
	}

	now := time.Now()
	dt := float64(now.Sub(ws.last)) / float64(time.Millisecond)
	ws.last = now
	if dt > maxFrameMs {
		dt = maxFrameMs
	}
	ws.sim.Update(dt, float64(now.Sub(ws.started))/float64(time.Millisecond))

	if ws.flash != nil {
		var done bool
		ws.flashLeft, done = ws.flash.Update(float32(dt / 1000))
		if done {
			ws.flash = nil
			ws.flashLeft = 0
		}
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	if ws.sim == nil {
		return
	}

	ws.sim.Draw(screen)
}

func (ws *WorldScene) drawOverlay(_ *ecs.ECS, screen *ebiten.Image) {
	render.DrawHitFlash(screen, float64(ws.flashLeft))
	render.DrawJoystick(screen, ws.controls.Stick)
}

func (ws *WorldScene) drawHUD(_ *ecs.ECS, screen *ebiten.Image) {
	if ws.ctx.Display.ShowHUD {
		render.DrawHUD(screen, ws.stats, render.HUDOptions{ShowFPS: ws.ctx.Display.ShowFPS})
	}
	if ws.stats.Downed {
		render.DrawDowned(screen, ws.stats)
	}
}

func (ws *WorldScene) configure() {
	seed := ws.ctx.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	ws.controls = controls.New()
	ws.sim = sim.New(ws.ctx.Tuning,
		sim.WithLogger(ws.ctx.Logger),
		sim.WithSeed(seed),
		sim.WithIntent(ws.controls),
		sim.WithViewport(ws),
		sim.WithHUD(ws),
	)

	ws.renderer = render.New(ws.sim)
	ws.sim.AddRenderer(render.LayerWorld, ws.renderer.DrawWorld)
	ws.sim.AddRenderer(render.LayerOverlay, ws.drawOverlay)
	ws.sim.AddRenderer(render.LayerHUD, ws.drawHUD)
	ws.sim.OnHostileKilled(func(sim.HostileKilledEvent) { sfx.Play(config.SoundKill) })
	ws.sim.OnPlayerHit(func(sim.PlayerHitEvent) {
		sfx.Play(config.SoundHit)
		ws.flash = gween.New(hitFlashStrength, 0, hitFlashSeconds, ease.OutQuad)
	})
	ws.sim.OnHunterFired(func(sim.HunterFiredEvent) { sfx.Play(config.SoundBurst) })
	ws.sim.OnPlayerDowned(func(ev sim.PlayerDownedEvent) {
		sfx.Play(config.SoundDowned)
		ws.ctx.Logger.Info("player downed", "kills", ev.Kills, "survived", time.Duration(ev.ElapsedMs)*time.Millisecond)
	})

	ws.started = time.Now()
	ws.last = ws.started
}
