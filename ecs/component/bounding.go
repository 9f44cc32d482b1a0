package component

import "github.com/go-gl/mathgl/mgl64"

// BoundingVolume answers ground queries for the shape it describes. The
// ground plane sits at y = 0. New shapes are added as variants in this
// package.
type BoundingVolume interface {
	// GroundOffset is the distance from the entity origin down to the
	// lowest point of the volume, i.e. the origin y when resting on the
	// ground.
	GroundOffset() float64
	// BottomY is the world y of the lowest point of the volume.
	BottomY(t *Transform) float64
	// IsGrounded reports whether the lowest point is at or below the
	// ground plane.
	IsGrounded(t *Transform) bool

	boundingVolume()
}

// Cube is an axis-aligned box described by its half extents.
type Cube struct {
	HalfExtents mgl64.Vec3
}

// CubeFromSize builds a cube from its full edge lengths.
func CubeFromSize(size mgl64.Vec3) Cube {
	return Cube{HalfExtents: size.Mul(0.5)}
}

func (c Cube) GroundOffset() float64 {
	return c.HalfExtents.Y()
}

func (c Cube) BottomY(t *Transform) float64 {
	return t.Position.Y() - c.GroundOffset()
}

func (c Cube) IsGrounded(t *Transform) bool {
	return c.BottomY(t) <= 0
}

func (Cube) boundingVolume() {}
