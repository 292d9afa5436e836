package sim

import (
	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/config"
	"github.com/automoto/dronefall/tags"
	"github.com/yohamta/donburi"
)

// ViewKind tells an adapter what an EntityView stands for.
type ViewKind int

const (
	ViewPlayer ViewKind = iota
	ViewSwarm
	ViewHunter
	ViewPlayerShot
	ViewHostileShot
	ViewWreck
)

func (k ViewKind) String() string {
	switch k {
	case ViewPlayer:
		return "player"
	case ViewSwarm:
		return "swarm"
	case ViewHunter:
		return "hunter"
	case ViewPlayerShot:
		return "player-shot"
	case ViewHostileShot:
		return "hostile-shot"
	case ViewWreck:
		return "wreck"
	}
	return "unknown"
}

// EntityView is a presentation-agnostic picture of one visible entity.
type EntityView struct {
	ID           donburi.Entity
	Kind         ViewKind
	X, Y         float64
	Rotation     float64
	Alpha        float64
	Radius       float64
	Telegraphing bool // Hunter about to fire
}

// AppendSnapshot appends a view of every visible entity to dst and returns
// the extended slice. Wrecks come first so adapters drawing in order put
// them underneath; the player comes last.
func (s *Simulation) AppendSnapshot(dst []EntityView) []EntityView {
	if s.closed {
		return dst
	}
	w := s.world
	session, ok := tags.Session.First(w)
	if !ok {
		return dst
	}
	roster := components.Roster.Get(session)

	for _, e := range roster.Effects {
		entry := w.Entry(e)
		fade := components.Fade.Get(entry)
		dst = appendView(dst, entry, ViewWreck, fade.Radius)
	}
	for _, e := range roster.Hostiles {
		entry := w.Entry(e)
		h := components.Hostile.Get(entry)
		if !h.Alive {
			continue
		}
		kind := ViewSwarm
		if h.Kind == config.KindHunter {
			kind = ViewHunter
		}
		n := len(dst)
		dst = appendView(dst, entry, kind, h.Radius)
		if kind == ViewHunter && len(dst) > n {
			dst[n].Telegraphing = components.Hunter.Get(entry).TelegraphMs > 0
		}
	}
	for _, e := range roster.PlayerShots {
		entry := w.Entry(e)
		if p := components.Projectile.Get(entry); p.Alive {
			dst = appendView(dst, entry, ViewPlayerShot, p.Radius)
		}
	}
	for _, e := range roster.HostileShots {
		entry := w.Entry(e)
		if p := components.Projectile.Get(entry); p.Alive {
			dst = appendView(dst, entry, ViewHostileShot, p.Radius)
		}
	}
	if playerEntry, ok := tags.Player.First(w); ok {
		dst = appendView(dst, playerEntry, ViewPlayer, s.cfg.Player.CollisionRadius)
	}
	return dst
}

func appendView(dst []EntityView, entry *donburi.Entry, kind ViewKind, radius float64) []EntityView {
	visual := components.Visual.Get(entry)
	if !visual.Visible {
		return dst
	}
	pos := components.Position.Get(entry)
	return append(dst, EntityView{
		ID:       entry.Entity(),
		Kind:     kind,
		X:        pos.X,
		Y:        pos.Y,
		Rotation: visual.Rotation,
		Alpha:    visual.Alpha,
		Radius:   radius,
	})
}

// Camera returns the top-left corner and size of the current window.
func (s *Simulation) Camera() (x, y, w, h float64) {
	if s.closed {
		return 0, 0, 0, 0
	}
	session, ok := tags.Session.First(s.world)
	if !ok {
		return 0, 0, 0, 0
	}
	c := components.Camera.Get(session)
	return c.Position.X, c.Position.Y, c.ViewW, c.ViewH
}
