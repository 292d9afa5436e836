package components

import "github.com/yohamta/donburi"

// PositionData is a world-space centre point.
type PositionData struct {
	X, Y float64
}

// VelocityData is expressed in world units per second.
type VelocityData struct {
	SpeedX float64
	SpeedY float64
}

var Position = donburi.NewComponentType[PositionData]()
var Velocity = donburi.NewComponentType[VelocityData]()
