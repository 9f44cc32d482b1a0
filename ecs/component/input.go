package component

import "github.com/go-gl/mathgl/mgl64"

// Input stores per-tick logical input state for an entity.
type Input struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool

	Jump        bool
	JumpPressed bool

	// PointerMotion is the pointer delta accumulated since the last tick.
	PointerMotion mgl64.Vec2
}

var InputComponent = NewComponent[Input]()
