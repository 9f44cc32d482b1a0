package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/cubehop/ecs"
)

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "player.yaml")
}

func NewPlayerAt(w *ecs.World, position mgl64.Vec3) (ecs.Entity, error) {
	e, err := NewPlayer(w)
	if err != nil {
		return 0, err
	}
	if err := SetEntityPosition(w, e, position); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return e, nil
}
