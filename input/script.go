package input

import "github.com/go-gl/mathgl/mgl64"

// Frame is one tick of scripted input.
type Frame struct {
	Held   []Button
	Motion mgl64.Vec2
}

// Script replays a fixed sequence of frames as a Source. Once the frames
// run out every button reads as released.
type Script struct {
	frames []Frame
	next   int

	held   map[Button]bool
	prev   map[Button]bool
	motion mgl64.Vec2
}

func NewScript(frames ...Frame) *Script {
	return &Script{frames: append([]Frame(nil), frames...)}
}

func (s *Script) Poll() {
	s.prev = s.held
	s.held = make(map[Button]bool)
	s.motion = mgl64.Vec2{}
	if s.next >= len(s.frames) {
		return
	}
	f := s.frames[s.next]
	s.next++
	for _, b := range f.Held {
		s.held[b] = true
	}
	s.motion = f.Motion
}

func (s *Script) IsPressed(b Button) bool {
	return s.held[b]
}

func (s *Script) IsJustPressed(b Button) bool {
	return s.held[b] && !s.prev[b]
}

func (s *Script) PointerDelta() mgl64.Vec2 {
	return s.motion
}

// Remaining reports how many frames have not been polled yet.
func (s *Script) Remaining() int {
	return len(s.frames) - s.next
}
