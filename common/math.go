package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis.
var Up = mgl64.Vec3{0, 1, 0}

func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// WrapAngle reduces a radian angle to (-π, π].
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	switch {
	case a > math.Pi:
		a -= 2 * math.Pi
	case a <= -math.Pi:
		a += 2 * math.Pi
	}
	return a
}

// LookRotation returns the orientation whose -Z axis points from eye to
// target. When the view direction is parallel to up, a perpendicular axis
// stands in for it. ok is false only when eye and target coincide.
func LookRotation(eye, target, up mgl64.Vec3) (mgl64.Quat, bool) {
	forward := target.Sub(eye)
	if forward.Len() < mgl64.Epsilon {
		return mgl64.QuatIdent(), false
	}
	forward = forward.Normalize()
	right := forward.Cross(up)
	if right.Len() < mgl64.Epsilon {
		right = forward.Cross(perpendicular(up))
	}
	right = right.Normalize()
	upOrtho := right.Cross(forward)
	basis := mgl64.Mat3FromCols(right, upOrtho, forward.Mul(-1))
	return mgl64.Mat4ToQuat(basis.Mat4()).Normalize(), true
}

// perpendicular returns a unit axis orthogonal to v.
func perpendicular(v mgl64.Vec3) mgl64.Vec3 {
	axis := mgl64.Vec3{0, 0, 1}
	if math.Abs(v.Normalize().Dot(axis)) > 0.9 {
		axis = mgl64.Vec3{1, 0, 0}
	}
	return axis.Sub(v.Mul(axis.Dot(v) / v.Dot(v))).Normalize()
}
