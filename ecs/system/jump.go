package system

import (
	"github.com/milk9111/cubehop/ecs"
	"github.com/milk9111/cubehop/ecs/component"
)

// JumpResetSystem refills the jump budget of every grounded actor. It runs
// every tick the actor is on the ground, not only on the landing tick, and
// must run before PlayerControllerSystem consumes a jump.
type JumpResetSystem struct{}

func NewJumpResetSystem() *JumpResetSystem {
	return &JumpResetSystem{}
}

func (s *JumpResetSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.JumpBudgetComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		component.TransformComponent.Kind(),
		func(_ ecs.Entity, jumps *component.JumpBudget, body *component.PhysicsBody, t *component.Transform) {
			if body.Volume == nil {
				return
			}
			if body.Volume.IsGrounded(t) {
				jumps.Reset()
			}
		})
}
