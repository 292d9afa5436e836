package main

import "github.com/automoto/dronefall/shared/intent"

type direction int

const (
	dirLeft direction = iota
	dirRight
	dirUp
	dirDown
	dirCount
)

// heldKeys treats a direction as held until holdMs after its last press.
type heldKeys struct {
	now     float64
	pressed [dirCount]float64
	seen    [dirCount]bool
}

func (k *heldKeys) press(d direction) {
	k.pressed[d] = k.now
	k.seen[d] = true
}

func (k *heldKeys) held(d direction) bool {
	return k.seen[d] && k.now-k.pressed[d] <= holdMs
}

func (k *heldKeys) intent() (float64, float64) {
	v := intent.KeyboardAxis(k.held(dirLeft), k.held(dirRight), k.held(dirUp), k.held(dirDown))
	return v.X, v.Y
}
