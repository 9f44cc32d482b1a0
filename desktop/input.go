// Package desktop adapts ebiten's keyboard, mouse and cursor state to the
// input collaborators the simulation consumes.
package desktop

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/cubehop/input"
)

type binding struct {
	key   ebiten.Key
	mouse ebiten.MouseButton
	isKey bool
}

var mouseButtons = map[input.Button]ebiten.MouseButton{
	input.MouseLeft:   ebiten.MouseButtonLeft,
	input.MouseRight:  ebiten.MouseButtonRight,
	input.MouseMiddle: ebiten.MouseButtonMiddle,
}

// Source polls ebiten once per tick. Pointer motion is the cursor
// displacement since the previous Poll.
type Source struct {
	bindings map[input.Button]binding

	cursor    mgl64.Vec2
	hasCursor bool
	delta     mgl64.Vec2
}

// NewSource resolves every known button name to its ebiten key or mouse
// button.
func NewSource() (*Source, error) {
	s := &Source{bindings: make(map[input.Button]binding)}
	for _, b := range input.Buttons() {
		if mb, ok := mouseButtons[b]; ok {
			s.bindings[b] = binding{mouse: mb}
			continue
		}
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(b)); err != nil {
			return nil, fmt.Errorf("desktop: button %q: %w", b, err)
		}
		s.bindings[b] = binding{key: k, isKey: true}
	}
	return s, nil
}

func (s *Source) Poll() {
	x, y := ebiten.CursorPosition()
	pos := mgl64.Vec2{float64(x), float64(y)}
	if s.hasCursor {
		s.delta = pos.Sub(s.cursor)
	}
	s.cursor = pos
	s.hasCursor = true
}

func (s *Source) IsPressed(b input.Button) bool {
	bind, ok := s.bindings[b]
	if !ok {
		return false
	}
	if bind.isKey {
		return ebiten.IsKeyPressed(bind.key)
	}
	return ebiten.IsMouseButtonPressed(bind.mouse)
}

func (s *Source) IsJustPressed(b input.Button) bool {
	bind, ok := s.bindings[b]
	if !ok {
		return false
	}
	if bind.isKey {
		return inpututil.IsKeyJustPressed(bind.key)
	}
	return inpututil.IsMouseButtonJustPressed(bind.mouse)
}

func (s *Source) PointerDelta() mgl64.Vec2 {
	return s.delta
}

// Pointer captures and releases the OS cursor.
type Pointer struct{}

func (Pointer) Captured() bool {
	return ebiten.CursorMode() == ebiten.CursorModeCaptured
}

func (Pointer) SetCaptured(captured bool) {
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

// Clock reports one fixed ebiten tick.
type Clock struct{}

func (Clock) Delta() float64 {
	return 1 / float64(ebiten.TPS())
}
