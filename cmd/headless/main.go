// Command headless runs a session without a window at a fixed step and
// reports how it went. Useful for tuning and reproducing seeds.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/automoto/dronefall/config"
	"github.com/automoto/dronefall/shared/gamemath"
	"github.com/automoto/dronefall/sim"
	"github.com/charmbracelet/log"
)

func main() {
	tuningPath := flag.String("tuning", "", "TOML file overriding the default tuning")
	seed := flag.Uint64("seed", 1, "random seed")
	ticks := flag.Int("ticks", 60*60*3, "number of ticks to run")
	dt := flag.Float64("dt", 1000.0/60, "milliseconds per tick")
	orbit := flag.Float64("orbit", 0.5, "player circles the arena at this turn rate in radians per second, 0 stands still")
	verbose := flag.Bool("v", false, "log every kill and hit")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "headless",
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	tuning := config.Default()
	if *tuningPath != "" {
		loaded, err := config.Load(*tuningPath)
		if err != nil {
			logger.Fatal("could not load tuning", "err", err)
		}
		tuning = loaded
	}

	r := run(logger, tuning, *seed, *ticks, *dt, *orbit)
	logger.Info("run finished",
		"seed", *seed,
		"ticks", r.Ticks,
		"kills", r.Stats.Kills,
		"hostiles", r.Stats.Hostiles,
		"health", r.Stats.Health,
		"downed", r.Stats.Downed,
		"hunter_bursts", r.Bursts,
		"hits_taken", r.Hits,
		"survived", time.Duration(r.Stats.ElapsedMs)*time.Millisecond,
	)
}

// report sums up one headless run.
type report struct {
	Stats  sim.Stats
	Ticks  int
	Bursts int
	Hits   int
}

// run steps a session until ticks have passed or the player is downed.
func run(logger *log.Logger, tuning *config.Config, seed uint64, ticks int, dtMs, orbit float64) report {
	var r report
	var heading float64
	s := sim.New(tuning,
		sim.WithLogger(logger),
		sim.WithSeed(seed),
		sim.WithIntent(sim.IntentFunc(func() (float64, float64) {
			if orbit == 0 {
				return 0, 0
			}
			return gamemath.FromAngle(heading)
		})),
	)
	defer s.Close()

	s.OnHunterFired(func(ev sim.HunterFiredEvent) { r.Bursts++ })
	s.OnPlayerHit(func(ev sim.PlayerHitEvent) {
		r.Hits++
		logger.Debug("player hit", "damage", ev.Damage, "health", ev.Health)
	})
	s.OnHostileKilled(func(ev sim.HostileKilledEvent) {
		logger.Debug("hostile killed", "kind", ev.Kind, "kills", ev.Kills)
	})

	var now float64
	for r.Ticks < ticks {
		now += dtMs
		heading += orbit * dtMs / 1000
		s.Update(dtMs, now)
		r.Ticks++
		if st := s.Stats(); st.Downed {
			break
		}
	}
	r.Stats = s.Stats()
	return r
}
