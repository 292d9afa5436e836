package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links a hostile to its cell in the neighbour grid.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton uniform grid used for neighbour sampling.
var Space = donburi.NewComponentType[resolv.Space]()
