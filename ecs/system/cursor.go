package system

import (
	"github.com/milk9111/cubehop/config"
	"github.com/milk9111/cubehop/ecs"
	"github.com/milk9111/cubehop/input"
	"github.com/rs/zerolog/log"
)

// CursorControlSystem releases the pointer on exit and captures it again on
// a primary click. It must run after InputSystem has polled the source.
type CursorControlSystem struct {
	source  input.Source
	pointer input.Pointer
	config  *config.Provider
}

func NewCursorControlSystem(source input.Source, pointer input.Pointer, cfg *config.Provider) *CursorControlSystem {
	return &CursorControlSystem{source: source, pointer: pointer, config: cfg}
}

func (c *CursorControlSystem) Update(w *ecs.World) {
	if c.source == nil || c.pointer == nil || c.config == nil {
		return
	}
	kb := c.config.Current().Bindings

	if c.source.IsJustPressed(kb.Exit) && c.pointer.Captured() {
		c.pointer.SetCaptured(false)
		log.Debug().Msg("pointer released")
	}
	if c.source.IsJustPressed(kb.PrimaryClick) && !c.pointer.Captured() {
		c.pointer.SetCaptured(true)
		log.Debug().Msg("pointer captured")
	}
}

// CaptureCursorAtStartup locks the pointer before the first tick.
func CaptureCursorAtStartup(pointer input.Pointer) ecs.StartupFunc {
	return func(*ecs.World) error {
		if pointer != nil {
			pointer.SetCaptured(true)
		}
		return nil
	}
}
