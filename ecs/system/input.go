package system

import (
	"github.com/milk9111/cubehop/config"
	"github.com/milk9111/cubehop/ecs"
	"github.com/milk9111/cubehop/ecs/component"
	"github.com/milk9111/cubehop/input"
)

// InputSystem samples the input source once per tick and copies the bound
// actions into every Input component.
type InputSystem struct {
	source input.Source
	config *config.Provider
}

func NewInputSystem(source input.Source, cfg *config.Provider) *InputSystem {
	return &InputSystem{source: source, config: cfg}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil || i.config == nil {
		return
	}

	i.source.Poll()
	kb := i.config.Current().Bindings

	state := component.Input{
		Forward:       i.source.IsPressed(kb.MoveForward),
		Backward:      i.source.IsPressed(kb.MoveBackwards),
		Left:          i.source.IsPressed(kb.MoveLeft),
		Right:         i.source.IsPressed(kb.MoveRight),
		Jump:          i.source.IsPressed(kb.Jump),
		JumpPressed:   i.source.IsJustPressed(kb.Jump),
		PointerMotion: i.source.PointerDelta(),
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		*in = state
	})
}
