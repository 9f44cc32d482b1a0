package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/cubehop/common"
)

// OrbitAxis is the direction the camera sits along before pitch and yaw
// are applied.
var OrbitAxis = mgl64.Vec3{0, 0, 1}

// OrbitCamera orbits a target at a fixed distance. Pitch stays within
// [-π/2, π/2]; yaw is unbounded.
type OrbitCamera struct {
	LagAmount     float64
	OrbitDistance float64
	Pitch         float64
	Yaw           float64
}

// Rotate applies a pointer delta scaled by the horizontal and vertical
// sensitivities.
func (c *OrbitCamera) Rotate(motion mgl64.Vec2, horizontal, vertical float64) {
	c.Yaw -= motion.X() * horizontal
	c.Pitch = common.Clamp(c.Pitch-motion.Y()*vertical, -math.Pi/2, math.Pi/2)
}

// Rotation is pitch about the local X axis followed by yaw about world Y.
func (c OrbitCamera) Rotation() mgl64.Quat {
	yaw := mgl64.QuatRotate(common.WrapAngle(c.Yaw), common.Up)
	pitch := mgl64.QuatRotate(c.Pitch, mgl64.Vec3{1, 0, 0})
	return yaw.Mul(pitch)
}

// OrbitPosition is the desired camera position around origin.
func (c OrbitCamera) OrbitPosition(origin mgl64.Vec3) mgl64.Vec3 {
	return origin.Add(c.Rotation().Rotate(OrbitAxis.Mul(c.OrbitDistance)))
}

// OrbitTransform places the camera on its orbit looking at origin.
func (c OrbitCamera) OrbitTransform(origin mgl64.Vec3) Transform {
	t := NewTransform(c.OrbitPosition(origin))
	if q, ok := common.LookRotation(t.Position, origin, common.Up); ok {
		t.Rotation = q
	}
	return t
}

var OrbitCameraComponent = NewComponent[OrbitCamera]()
