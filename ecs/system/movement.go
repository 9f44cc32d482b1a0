package system

import (
	"github.com/milk9111/cubehop/ecs"
	"github.com/milk9111/cubehop/ecs/component"
)

// MovementSystem integrates velocity into position for every moving entity.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	step := w.Time().Step()
	ecs.ForEach2(w,
		component.VelocityComponent.Kind(),
		component.TransformComponent.Kind(),
		func(_ ecs.Entity, vel *component.Velocity, t *component.Transform) {
			t.Position = t.Position.Add(vel.Value.Mul(step))
		})
}
