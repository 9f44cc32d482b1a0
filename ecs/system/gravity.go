package system

import (
	"github.com/milk9111/cubehop/config"
	"github.com/milk9111/cubehop/ecs"
	"github.com/milk9111/cubehop/ecs/component"
	"github.com/rs/zerolog/log"
)

// GravitySystem accelerates airborne bodies downward and snaps bodies that
// sank below the ground plane back onto it. A body whose bottom sits
// exactly on the plane is left alone.
type GravitySystem struct {
	config *config.Provider
}

func NewGravitySystem(cfg *config.Provider) *GravitySystem {
	return &GravitySystem{config: cfg}
}

func (g *GravitySystem) Update(w *ecs.World) {
	if w == nil || g.config == nil {
		return
	}

	gravity := g.config.Current().Physics.Gravity
	step := w.Time().Step()

	ecs.ForEach4(w,
		component.GravityTagComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, _ *component.GravityTag, body *component.PhysicsBody, vel *component.Velocity, t *component.Transform) {
			if body.Volume == nil {
				return
			}
			bottom := body.Volume.BottomY(t)
			switch {
			case bottom > 0:
				vel.Value[1] -= gravity * step
			case bottom < 0:
				t.Position[1] = body.Volume.GroundOffset()
				vel.Value[1] = 0
				w.Events().Push(ecs.Event{
					Type: string(ecs.MovementEventLanded),
					Data: ecs.MovementEvent{Entity: e, Kind: ecs.MovementEventLanded},
				})
				log.Debug().Str("entity", e.String()).Float64("depth", -bottom).Msg("snapped to ground")
			}
		})
}
