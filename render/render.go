// Package render draws simulation snapshots with ebiten vector shapes. It
// only reads views; nothing here feeds back into the simulation.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/dronefall/controls"
	"github.com/automoto/dronefall/fonts"
	"github.com/automoto/dronefall/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const gridSpacing = 200

// Draw layers, drawn in increasing order.
const (
	LayerWorld ecs.LayerID = iota
	LayerOverlay
	LayerHUD
)

var (
	colorBackground  = color.RGBA{12, 14, 22, 255}
	colorGrid        = color.RGBA{28, 32, 46, 255}
	colorBorder      = color.RGBA{90, 40, 40, 255}
	colorPlayer      = color.RGBA{80, 220, 255, 255}
	colorSwarm       = color.RGBA{230, 70, 70, 255}
	colorHunter      = color.RGBA{255, 170, 40, 255}
	colorTelegraph   = color.RGBA{255, 240, 120, 255}
	colorPlayerShot  = color.RGBA{200, 255, 255, 255}
	colorHostileShot = color.RGBA{255, 120, 200, 255}
	colorWreck       = color.RGBA{120, 120, 120, 255}
	colorText        = color.RGBA{230, 230, 230, 255}
	colorHealthBack  = color.RGBA{60, 20, 20, 255}
	colorHealth      = color.RGBA{80, 220, 120, 255}
	colorStick       = color.RGBA{60, 60, 60, 60}
	colorKnob        = color.RGBA{120, 120, 120, 120}
)

// Renderer draws one simulation and keeps the snapshot buffer between
// frames.
type Renderer struct {
	sim   *sim.Simulation
	views []sim.EntityView
}

func New(s *sim.Simulation) *Renderer {
	return &Renderer{sim: s}
}

// DrawWorld draws the arena and every visible entity relative to the
// simulation camera. Register it on LayerWorld.
func (r *Renderer) DrawWorld(_ *ecs.ECS, screen *ebiten.Image) {
	s := r.sim
	screen.Fill(colorBackground)

	camX, camY, viewW, viewH := s.Camera()
	drawGrid(screen, s, camX, camY, viewW, viewH)

	r.views = s.AppendSnapshot(r.views[:0])
	for _, v := range r.views {
		x := float32(v.X - camX)
		y := float32(v.Y - camY)
		rad := float32(v.Radius)

		switch v.Kind {
		case sim.ViewPlayer:
			vector.FillCircle(screen, x, y, rad, colorPlayer, true)
			drawNose(screen, x, y, rad, v.Rotation, colorPlayer)
		case sim.ViewSwarm:
			vector.FillCircle(screen, x, y, rad, fade(colorSwarm, v.Alpha), true)
			drawNose(screen, x, y, rad, v.Rotation, fade(colorSwarm, v.Alpha))
		case sim.ViewHunter:
			vector.FillCircle(screen, x, y, rad, fade(colorHunter, v.Alpha), true)
			if v.Telegraphing {
				vector.StrokeCircle(screen, x, y, rad+4, 2, fade(colorTelegraph, v.Alpha), true)
			}
			drawNose(screen, x, y, rad, v.Rotation, fade(colorHunter, v.Alpha))
		case sim.ViewPlayerShot:
			vector.FillCircle(screen, x, y, rad/2, colorPlayerShot, true)
		case sim.ViewHostileShot:
			vector.FillCircle(screen, x, y, rad/2, colorHostileShot, true)
		case sim.ViewWreck:
			vector.StrokeCircle(screen, x, y, rad, 2, fade(colorWreck, v.Alpha), true)
		}
	}
}

func drawGrid(screen *ebiten.Image, s *sim.Simulation, camX, camY, viewW, viewH float64) {
	worldW := s.Config().World.Width
	worldH := s.Config().World.Height

	for gx := math.Floor(camX/gridSpacing) * gridSpacing; gx <= camX+viewW; gx += gridSpacing {
		x := float32(gx - camX)
		vector.StrokeLine(screen, x, 0, x, float32(viewH), 1, colorGrid, false)
	}
	for gy := math.Floor(camY/gridSpacing) * gridSpacing; gy <= camY+viewH; gy += gridSpacing {
		y := float32(gy - camY)
		vector.StrokeLine(screen, 0, y, float32(viewW), y, 1, colorGrid, false)
	}

	vector.StrokeRect(screen, float32(-camX), float32(-camY), float32(worldW), float32(worldH), 3, colorBorder, false)
}

// drawNose marks the facing. Rotations use an up-facing forward axis.
func drawNose(screen *ebiten.Image, x, y, rad float32, rotation float64, c color.Color) {
	dx := float32(math.Cos(rotation - math.Pi/2))
	dy := float32(math.Sin(rotation - math.Pi/2))
	vector.StrokeLine(screen, x, y, x+dx*(rad+6), y+dy*(rad+6), 2, c, true)
}

// HUDOptions selects which HUD parts are drawn.
type HUDOptions struct {
	ShowFPS bool
}

// DrawHUD draws the health bar and counters in the top-left corner.
func DrawHUD(screen *ebiten.Image, st sim.Stats, opts HUDOptions) {
	const barW, barH = 200, 10

	vector.FillRect(screen, 16, 16, barW, barH, colorHealthBack, false)
	if st.MaxHealth > 0 {
		w := float32(st.Health / st.MaxHealth * barW)
		vector.FillRect(screen, 16, 16, w, barH, colorHealth, false)
	}

	face := fonts.HUD.Get()
	text.Draw(screen, fmt.Sprintf("HP %3.0f  KILLS %d  HOSTILES %d", st.Health, st.Kills, st.Hostiles), face, 16, 44, colorText)

	secs := int(st.ElapsedMs / 1000)
	status := fmt.Sprintf("%02d:%02d  (%4.0f, %4.0f)", secs/60, secs%60, st.X, st.Y)
	if opts.ShowFPS {
		status += fmt.Sprintf("  %2.0f FPS", st.FPS)
	}
	text.Draw(screen, status, fonts.HUDSmall.Get(), 16, 62, colorText)
}

// DrawDowned draws the end-of-run banner.
func DrawDowned(screen *ebiten.Image, st sim.Stats) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 140}, false)

	banner := "DOWNED"
	face := fonts.Banner.Get()
	bounds := text.BoundString(face, banner) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, banner, face, (w-bounds.Dx())/2, h/2, colorSwarm)

	hint := fmt.Sprintf("%d kills. Press ESC for the menu", st.Kills)
	small := fonts.HUD.Get()
	hb := text.BoundString(small, hint) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, hint, small, (w-hb.Dx())/2, h/2+32, colorText)
}

// DrawJoystick draws the on-screen stick while it is held.
func DrawJoystick(screen *ebiten.Image, stick controls.Joystick) {
	if !stick.Active {
		return
	}
	vector.StrokeCircle(screen, float32(stick.BaseX), float32(stick.BaseY), controls.JoystickRadius, 2, colorStick, true)
	vector.FillCircle(screen, float32(stick.KnobX), float32(stick.KnobY), 18, colorKnob, true)
}

// fade scales a colour by alpha. ebiten colours are premultiplied, so every
// channel is scaled.
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
