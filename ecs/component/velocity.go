package component

import "github.com/go-gl/mathgl/mgl64"

// Velocity is motion in units per second. Only entities that should move
// carry one.
type Velocity struct {
	Value mgl64.Vec3
}

var VelocityComponent = NewComponent[Velocity]()
