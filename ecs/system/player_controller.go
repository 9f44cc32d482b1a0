package system

import (
	"github.com/milk9111/cubehop/config"
	"github.com/milk9111/cubehop/ecs"
	"github.com/milk9111/cubehop/ecs/component"
	"github.com/rs/zerolog/log"
)

// PlayerControllerSystem maps held movement keys to horizontal velocity and
// turns a jump press into an upward impulse while jumps remain.
type PlayerControllerSystem struct {
	config *config.Provider
}

func NewPlayerControllerSystem(cfg *config.Provider) *PlayerControllerSystem {
	return &PlayerControllerSystem{config: cfg}
}

var playerQuery = ecs.With(
	component.PlayerTagComponent.Kind(),
	component.InputComponent.Kind(),
	component.VelocityComponent.Kind(),
)

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil || p.config == nil {
		return
	}

	match := w.Single(playerQuery)
	if !match.Found() {
		return
	}
	e := match.Entity

	input, _ := ecs.Get(w, e, component.InputComponent.Kind())
	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())

	speed := 1.0
	if player, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		speed = player.MoveSpeed
	}

	vel.Value[0] = axis(input.Right, input.Left) * speed
	vel.Value[2] = axis(input.Backward, input.Forward) * speed

	if !input.JumpPressed {
		return
	}
	jumps, ok := ecs.Get(w, e, component.JumpBudgetComponent.Kind())
	if !ok || !jumps.Consume() {
		return
	}
	vel.Value[1] = p.config.Current().Physics.JumpSpeed

	w.Events().Push(ecs.Event{
		Type: string(ecs.MovementEventJumped),
		Data: ecs.MovementEvent{Entity: e, Kind: ecs.MovementEventJumped, JumpsRemaining: jumps.Remaining},
	})
	log.Debug().Str("entity", e.String()).Int("jumps_remaining", jumps.Remaining).Msg("jump")
}

// axis is +1 for positive alone, -1 for negative alone, 0 otherwise.
func axis(positive, negative bool) float64 {
	switch {
	case positive && !negative:
		return 1
	case negative && !positive:
		return -1
	}
	return 0
}
