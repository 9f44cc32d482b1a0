package input

import "strings"

const (
	MouseLeft   Button = "MouseLeft"
	MouseRight  Button = "MouseRight"
	MouseMiddle Button = "MouseMiddle"
)

var knownButtons = func() map[string]Button {
	names := []string{
		"Space", "Escape", "Enter", "Tab", "Backspace",
		"ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight",
		"ShiftLeft", "ShiftRight", "ControlLeft", "ControlRight", "AltLeft", "AltRight",
		string(MouseLeft), string(MouseRight), string(MouseMiddle),
	}
	for c := 'A'; c <= 'Z'; c++ {
		names = append(names, string(c))
	}
	for c := '0'; c <= '9'; c++ {
		names = append(names, "Digit"+string(c))
	}
	m := make(map[string]Button, len(names))
	for _, n := range names {
		m[strings.ToLower(n)] = Button(n)
	}
	return m
}()

// ParseButton resolves a button name case-insensitively to its canonical
// spelling.
func ParseButton(name string) (Button, bool) {
	b, ok := knownButtons[strings.ToLower(strings.TrimSpace(name))]
	return b, ok
}

// Buttons returns every supported button name.
func Buttons() []Button {
	out := make([]Button, 0, len(knownButtons))
	for _, b := range knownButtons {
		out = append(out, b)
	}
	return out
}

// IsMouse reports whether b names a mouse button.
func (b Button) IsMouse() bool {
	return strings.HasPrefix(string(b), "Mouse")
}
