package main

import (
	"errors"
	"flag"
	"image"
	"os"

	"github.com/automoto/dronefall/config"
	"github.com/automoto/dronefall/fonts"
	"github.com/automoto/dronefall/persistence"
	"github.com/automoto/dronefall/render"
	"github.com/automoto/dronefall/scenes"
	"github.com/automoto/dronefall/sfx"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game loop after the current update.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(ctx *scenes.Context) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMenuScene(ctx, g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, screenWidth, screenHeight)
	return screenWidth, screenHeight
}

func main() {
	tuningPath := flag.String("tuning", "", "TOML file overriding the default tuning")
	seed := flag.Uint64("seed", 0, "random seed, 0 picks one per session")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dronefall",
	})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	tuning := config.Default()
	if *tuningPath != "" {
		loaded, err := config.Load(*tuningPath)
		if err != nil {
			logger.Error("could not load tuning, using defaults", "err", err)
		} else {
			tuning = loaded
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("could not load fonts", "err", err)
	}
	if err := render.LoadShaders(); err != nil {
		logger.Warn("could not compile shaders, hit flash disabled", "err", err)
	}

	// Initialize persistence and load saved settings
	store, err := persistence.Open("dronefall")
	if err != nil {
		logger.Warn("could not initialize persistence", "err", err)
	}
	display, err := store.Load()
	if err != nil {
		logger.Warn("could not load display settings", "err", err)
	}

	ctx := &scenes.Context{
		Logger:       logger,
		Tuning:       tuning,
		Store:        store,
		Display:      display,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		Seed:         *seed,
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("dronefall")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetFullscreen(display.Fullscreen)
	sfx.Preload()
	sfx.SetMuted(display.Muted)

	if err := ebiten.RunGame(NewGame(ctx)); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game exited", "err", err)
	}
}
