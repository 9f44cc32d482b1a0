package input

import "github.com/go-gl/mathgl/mgl64"

// Action is a logical input the simulation reacts to.
type Action string

const (
	MoveForward    Action = "move_forward"
	MoveLeft       Action = "move_left"
	MoveRight      Action = "move_right"
	MoveBackwards  Action = "move_backwards"
	Jump           Action = "jump"
	Exit           Action = "exit"
	PrimaryClick   Action = "primary_click"
	SecondaryClick Action = "secondary_click"
)

// Actions lists every bindable action.
var Actions = []Action{
	MoveForward,
	MoveLeft,
	MoveRight,
	MoveBackwards,
	Jump,
	Exit,
	PrimaryClick,
	SecondaryClick,
}

// Button names a physical key or mouse button, e.g. "W", "Space" or
// "MouseLeft".
type Button string

// Source is the device-side input producer. Poll is called once at the
// start of every tick; the other methods describe that tick.
type Source interface {
	Poll()
	IsPressed(b Button) bool
	IsJustPressed(b Button) bool
	// PointerDelta is the pointer motion accumulated since the previous
	// Poll.
	PointerDelta() mgl64.Vec2
}

// Pointer is the cursor-capture collaborator.
type Pointer interface {
	Captured() bool
	SetCaptured(captured bool)
}

// LockState is an in-memory Pointer.
type LockState struct {
	locked bool
}

func (l *LockState) Captured() bool {
	return l != nil && l.locked
}

func (l *LockState) SetCaptured(captured bool) {
	if l == nil {
		return
	}
	l.locked = captured
}
