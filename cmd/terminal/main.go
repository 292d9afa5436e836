// Command terminal plays a session in a text terminal. Each character cell
// covers a fixed patch of world units around the player.
package main

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/automoto/dronefall/config"
	"github.com/automoto/dronefall/sim"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = 16 * time.Millisecond
	// How long a key keeps steering after its last repeat. Terminals do
	// not report key releases.
	holdMs = 140
)

func main() {
	tuningPath := flag.String("tuning", "", "TOML file overriding the default tuning")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	// The screen owns stdout, so log to stderr only once it is closed.
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "dronefall"})

	tuning := config.Default()
	if *tuningPath != "" {
		loaded, err := config.Load(*tuningPath)
		if err != nil {
			logger.Fatal("could not load tuning", "err", err)
		}
		tuning = loaded
	}

	// Before the screen takes over the terminal, so a warning stays readable.
	sound := openSound(logger, *mute, newBlips)

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("could not open terminal", "err", err)
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("could not init terminal", "err", err)
	}

	g := newGame(screen, tuning, *seed, sound)
	final := g.run()
	screen.Fini()

	logger.Info("session over",
		"kills", final.Kills,
		"survived", time.Duration(final.ElapsedMs)*time.Millisecond,
		"downed", final.Downed,
	)
}

type game struct {
	screen tcell.Screen
	sim    *sim.Simulation
	sound  *blips
	keys   heldKeys
	views  []sim.EntityView
	stats  sim.Stats
}

func newGame(screen tcell.Screen, tuning *config.Config, seed uint64, sound *blips) *game {
	g := &game{screen: screen, sound: sound}
	g.sim = sim.New(tuning,
		sim.WithLogger(log.New(io.Discard)),
		sim.WithSeed(seed),
		sim.WithIntent(sim.IntentFunc(func() (float64, float64) { return g.keys.intent() })),
		sim.WithViewport(g),
		sim.WithHUD(g),
	)
	if sound != nil {
		g.sim.OnHostileKilled(func(sim.HostileKilledEvent) { sound.kill() })
		g.sim.OnPlayerHit(func(sim.PlayerHitEvent) { sound.hit() })
	}
	return g
}

// ViewSize implements sim.Viewport in world units.
func (g *game) ViewSize() (float64, float64) {
	cols, rows := g.screen.Size()
	return float64(cols) * cellWidth, float64(rows-hudRows) * cellHeight
}

// PublishStats implements sim.HUD.
func (g *game) PublishStats(st sim.Stats) {
	g.stats = st
}

func (g *game) run() sim.Stats {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	start := time.Now()
	last := start
	for {
		select {
		case ev := <-events:
			if g.handle(ev) {
				final := g.stats
				g.sim.Close()
				return final
			}
		case now := <-ticker.C:
			dt := float64(now.Sub(last)) / float64(time.Millisecond)
			last = now
			nowMs := float64(now.Sub(start)) / float64(time.Millisecond)
			g.keys.now = nowMs
			g.sim.Update(dt, nowMs)
			g.draw()
		}
	}
}

// handle applies one terminal event and reports whether to quit.
func (g *game) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyLeft:
			g.keys.press(dirLeft)
		case tcell.KeyRight:
			g.keys.press(dirRight)
		case tcell.KeyUp:
			g.keys.press(dirUp)
		case tcell.KeyDown:
			g.keys.press(dirDown)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'a', 'h':
				g.keys.press(dirLeft)
			case 'd', 'l':
				g.keys.press(dirRight)
			case 'w', 'k':
				g.keys.press(dirUp)
			case 's', 'j':
				g.keys.press(dirDown)
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return false
}

func (g *game) draw() {
	g.screen.Clear()
	cols, rows := g.screen.Size()
	camX, camY, _, _ := g.sim.Camera()

	g.views = g.sim.AppendSnapshot(g.views[:0])
	for _, v := range g.views {
		col, row, ok := project(v.X, v.Y, camX, camY, cols, rows-hudRows)
		if !ok {
			continue
		}
		r, style := glyph(v, g.stats.Downed)
		g.screen.SetContent(col, row+hudRows, r, nil, style)
	}

	drawHUD(g.screen, g.stats, cols)
	g.screen.Show()
}
