package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/cubehop/ecs"
	"github.com/milk9111/cubehop/ecs/component"
	"github.com/milk9111/cubehop/ecs/entity"
	"github.com/rs/zerolog/log"
)

// SpawnPlayer builds the player from its prefab.
func SpawnPlayer(w *ecs.World) error {
	e, err := entity.NewPlayer(w)
	if err != nil {
		return fmt.Errorf("spawn player: %w", err)
	}
	log.Info().Str("entity", e.String()).Msg("player spawned")
	return nil
}

// SpawnPlayerAt builds the player from its prefab and moves it to position.
func SpawnPlayerAt(position mgl64.Vec3) ecs.StartupFunc {
	return func(w *ecs.World) error {
		e, err := entity.NewPlayerAt(w, position)
		if err != nil {
			return fmt.Errorf("spawn player: %w", err)
		}
		log.Info().Str("entity", e.String()).Floats64("position", position[:]).Msg("player spawned")
		return nil
	}
}

// SpawnCamera builds the orbit camera around the player. Without a player
// there is nothing to orbit and no camera is created.
func SpawnCamera(w *ecs.World) error {
	target := w.Single(cameraTargetQuery)
	if !target.Found() {
		log.Warn().Err(target.Err()).Msg("camera not spawned")
		return nil
	}
	t, _ := ecs.Get(w, target.Entity, component.TransformComponent.Kind())
	e, err := entity.NewCamera(w, t.Position)
	if err != nil {
		return fmt.Errorf("spawn camera: %w", err)
	}
	log.Info().Str("entity", e.String()).Str("target", target.Entity.String()).Msg("camera spawned")
	return nil
}

// ValidateSingletons fails startup when the player or camera queries match
// more than one entity. Per-tick systems treat any non-single match as
// "skip this tick".
func ValidateSingletons(w *ecs.World) error {
	checks := []struct {
		name   string
		filter ecs.Filter
	}{
		{"player", playerQuery},
		{"camera target", cameraTargetQuery},
		{"orbit camera", orbitCameraQuery},
	}
	for _, c := range checks {
		if m := w.Single(c.filter); m.Count > 1 {
			return fmt.Errorf("validate %s: %d entities: %w", c.name, m.Count, m.Err())
		}
	}
	return nil
}
