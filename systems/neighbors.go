package systems

import (
	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/tags"
	"github.com/yohamta/donburi"
)

// neighbour is a sampled nearby hostile position.
type neighbour struct {
	X, Y float64
}

// syncNeighbourGrid moves every live hostile's grid object to the hostile's
// current position. Sampling during the steering pass reads these
// positions, so all hostiles steer against the same snapshot.
func syncNeighbourGrid(w donburi.World) {
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	for _, e := range components.Roster.Get(session).Hostiles {
		entry := w.Entry(e)
		if !components.Hostile.Get(entry).Alive {
			continue
		}
		pos := components.Position.Get(entry)
		obj := components.Object.Get(entry)
		obj.X = pos.X - obj.W/2
		obj.Y = pos.Y - obj.H/2
		obj.Update()
	}
}

// sampleNeighbours appends to dst the centres of at most limit hostiles that
// share grid cells with entry. The sample is local but not exhaustive.
func sampleNeighbours(dst []neighbour, entry *donburi.Entry, limit int) []neighbour {
	obj := components.Object.Get(entry)
	if obj.Space == nil || limit <= 0 {
		return dst
	}
	check := obj.Check(0, 0, tags.ResolvHostile)
	if check == nil {
		return dst
	}
	for _, o := range check.Objects {
		if len(dst) >= limit {
			break
		}
		dst = append(dst, neighbour{X: o.X + o.W/2, Y: o.Y + o.H/2})
	}
	return dst
}
