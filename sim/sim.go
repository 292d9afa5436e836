// Package sim owns one game session: the donburi ECS holding every entity,
// the fixed-order system pipeline and the collaborators an adapter plugs in.
package sim

import (
	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/config"
	"github.com/automoto/dronefall/shared/contract"
	"github.com/automoto/dronefall/shared/gamemath"
	"github.com/automoto/dronefall/systems"
	"github.com/automoto/dronefall/systems/factory"
	"github.com/automoto/dronefall/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fpsSmoothing is the weight of the newest sample in the frame-rate average.
const fpsSmoothing = 0.1

type (
	HostileKilledEvent = systems.HostileKilledEvent
	PlayerHitEvent     = systems.PlayerHitEvent
	HunterFiredEvent   = systems.HunterFiredEvent
	PlayerDownedEvent  = systems.PlayerDownedEvent
)

// Option configures a Simulation.
type Option func(*Simulation)

func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) { s.logger = l }
}

// WithSeed fixes the random source so a session can be replayed.
func WithSeed(seed uint64) Option {
	return func(s *Simulation) { s.seed = seed }
}

func WithIntent(src IntentSource) Option {
	return func(s *Simulation) { s.intent = src }
}

func WithViewport(v Viewport) Option {
	return func(s *Simulation) { s.viewport = v }
}

func WithHUD(h HUD) Option {
	return func(s *Simulation) { s.hud = h }
}

// Simulation is a single session. It is not safe for concurrent use; the
// adapter calls Update once per frame from its own loop.
type Simulation struct {
	ecs    *ecs.ECS
	world  donburi.World // ecs.World
	cfg    *config.Config
	logger *log.Logger
	seed   uint64

	intent   IntentSource
	viewport Viewport
	hud      HUD

	saturated bool
	closed    bool
}

// New creates a session with the player at the centre of the world. A nil
// config uses config.Default.
func New(cfg *config.Config, opts ...Option) *Simulation {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Simulation{
		ecs:      ecs.NewECS(donburi.NewWorld()),
		cfg:      cfg,
		logger:   log.Default(),
		seed:     1,
		viewport: FixedViewport{W: 1280, H: 720},
	}
	s.world = s.ecs.World
	for _, opt := range opts {
		opt(s)
	}

	factory.CreateSession(s.world, cfg, s.seed)
	factory.CreatePlayer(s.world, cfg)

	s.ecs.AddSystem(systems.UpdatePlayer)
	s.ecs.AddSystem(systems.UpdateCamera)
	s.ecs.AddSystem(systems.UpdateSpawner)
	s.ecs.AddSystem(systems.UpdateAutofire)
	s.ecs.AddSystem(systems.UpdateProjectiles)
	s.ecs.AddSystem(systems.CullProjectiles)
	s.ecs.AddSystem(systems.UpdateHostiles)
	s.ecs.AddSystem(systems.ResolveCollisions)
	s.ecs.AddSystem(systems.ApplyContactDamage)
	s.ecs.AddSystem(systems.PurgeDead)
	s.ecs.AddSystem(systems.UpdateEffects)

	s.logger.Info("session started",
		"seed", s.seed,
		"world", [2]float64{cfg.World.Width, cfg.World.Height},
		"spawn", cfg.Spawn.Pattern)
	return s
}

// Update advances the session by dtMs milliseconds. nowMs is the adapter's
// absolute clock and only drives periodic visuals. Calling Update after
// Close does nothing.
func (s *Simulation) Update(dtMs, nowMs float64) {
	contract.Require(!s.closed, "update on a closed simulation")
	if s.closed {
		return
	}
	if dtMs < 0 {
		dtMs = 0
	}
	session, ok := tags.Session.First(s.world)
	if !ok {
		return
	}

	s.tickClock(session, dtMs, nowMs)
	s.sampleInput(session)

	s.ecs.Update()

	if director := components.Director.Get(session); director.Saturated != s.saturated {
		s.saturated = director.Saturated
		s.logger.Debug("spawn cap", "saturated", s.saturated, "max_alive", s.cfg.Spawn.MaxAlive)
	}

	if s.hud != nil {
		s.hud.PublishStats(s.Stats())
	}
	systems.FlushEvents(s.world)
}

// AddRenderer registers a draw function on layer l. r has the form
// func(*ecs.ECS, T) and is called by Draw with an argument of type T.
func (s *Simulation) AddRenderer(l ecs.LayerID, r any) {
	if s.closed {
		return
	}
	s.ecs.AddRenderer(l, r)
}

// Draw runs every renderer registered for arg's type, layer by layer.
func (s *Simulation) Draw(arg any) {
	if s.closed {
		return
	}
	s.ecs.Draw(arg)
}

func (s *Simulation) tickClock(session *donburi.Entry, dtMs, nowMs float64) {
	clock := components.Clock.Get(session)
	clock.DtMs = dtMs
	clock.NowMs = nowMs
	clock.ElapsedMs += dtMs
	clock.Ticks++
	if dtMs > 0 {
		fps := 1000 / dtMs
		if clock.FPS == 0 {
			clock.FPS = fps
		} else {
			clock.FPS += (fps - clock.FPS) * fpsSmoothing
		}
	}
}

func (s *Simulation) sampleInput(session *donburi.Entry) {
	input := components.Input.Get(session)
	*input = components.InputData{}
	if s.intent != nil {
		x, y := s.intent.Intent()
		if nx, ny, l := gamemath.Normalize(x, y); l > 1 {
			x, y = nx, ny
		}
		input.X, input.Y = x, y
	}

	camera := components.Camera.Get(session)
	camera.ViewW, camera.ViewH = s.viewport.ViewSize()
}

// Stats returns the current session summary.
func (s *Simulation) Stats() Stats {
	if s.closed {
		return Stats{}
	}
	var st Stats
	if session, ok := tags.Session.First(s.world); ok {
		clock := components.Clock.Get(session)
		st.FPS = clock.FPS
		st.ElapsedMs = clock.ElapsedMs
		for _, e := range components.Roster.Get(session).Hostiles {
			if components.Hostile.Get(s.world.Entry(e)).Alive {
				st.Hostiles++
			}
		}
	}
	if playerEntry, ok := tags.Player.First(s.world); ok {
		health := components.Health.Get(playerEntry)
		pos := components.Position.Get(playerEntry)
		player := components.Player.Get(playerEntry)
		st.Health, st.MaxHealth = health.Current, health.Max
		st.X, st.Y = pos.X, pos.Y
		st.Kills = player.Kills
		st.Downed = player.Downed
	}
	return st
}

// Config returns the tuning the session runs with.
func (s *Simulation) Config() *config.Config { return s.cfg }

// SpawnHostile places a hostile directly, bypassing the spawn director.
func (s *Simulation) SpawnHostile(kind config.HostileKind, x, y float64) donburi.Entity {
	if s.closed {
		return donburi.Null
	}
	entry := factory.AcquireHostile(s.world, kind, x, y)
	if entry == nil {
		return donburi.Null
	}
	return entry.Entity()
}

// Event subscriptions. Handlers run at the end of the tick that raised the
// event.

func (s *Simulation) OnHostileKilled(fn func(HostileKilledEvent)) {
	if s.closed {
		return
	}
	systems.HostileKilled.Subscribe(s.world, func(_ donburi.World, ev HostileKilledEvent) { fn(ev) })
}

func (s *Simulation) OnPlayerHit(fn func(PlayerHitEvent)) {
	if s.closed {
		return
	}
	systems.PlayerHit.Subscribe(s.world, func(_ donburi.World, ev PlayerHitEvent) { fn(ev) })
}

func (s *Simulation) OnHunterFired(fn func(HunterFiredEvent)) {
	if s.closed {
		return
	}
	systems.HunterFired.Subscribe(s.world, func(_ donburi.World, ev HunterFiredEvent) { fn(ev) })
}

func (s *Simulation) OnPlayerDowned(fn func(PlayerDownedEvent)) {
	if s.closed {
		return
	}
	systems.PlayerDowned.Subscribe(s.world, func(_ donburi.World, ev PlayerDownedEvent) { fn(ev) })
}

// Close releases every entity, live or pooled, together with the neighbour
// grid and the collaborators. The Simulation is unusable afterwards.
func (s *Simulation) Close() {
	if s.closed {
		return
	}
	s.closed = true

	w := s.world
	var doomed []donburi.Entity
	if session, ok := tags.Session.First(w); ok {
		roster := components.Roster.Get(session)
		pool := components.Pool.Get(session)
		doomed = append(doomed, roster.Hostiles...)
		doomed = append(doomed, roster.PlayerShots...)
		doomed = append(doomed, roster.HostileShots...)
		doomed = append(doomed, roster.Effects...)
		for _, free := range pool.Hostiles {
			doomed = append(doomed, free...)
		}
		doomed = append(doomed, pool.PlayerShots...)
		doomed = append(doomed, pool.HostileShots...)
		*roster = components.RosterData{}
		*pool = components.PoolData{}
		doomed = append(doomed, session.Entity())
	}
	if space, ok := components.Space.First(w); ok {
		grid := components.Space.Get(space)
		grid.Remove(grid.Objects()...)
		doomed = append(doomed, space.Entity())
	}
	if playerEntry, ok := tags.Player.First(w); ok {
		doomed = append(doomed, playerEntry.Entity())
	}
	for _, e := range doomed {
		if w.Valid(e) {
			w.Remove(e)
		}
	}

	s.logger.Info("session closed", "entities_released", len(doomed))

	s.ecs = nil
	s.intent = nil
	s.viewport = nil
	s.hud = nil
	s.world = nil
}
