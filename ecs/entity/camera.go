package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/cubehop/ecs"
	"github.com/milk9111/cubehop/ecs/component"
)

// NewCamera builds the orbit camera and places it on its orbit around
// target, looking at it.
func NewCamera(w *ecs.World, target mgl64.Vec3) (ecs.Entity, error) {
	camera, err := BuildEntity(w, "camera.yaml")
	if err != nil {
		return 0, err
	}

	orbit, ok := ecs.Get(w, camera, component.OrbitCameraComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, camera)
		return 0, fmt.Errorf("camera: prefab has no orbit_camera component")
	}
	placed := orbit.OrbitTransform(target)
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &placed); err != nil {
		return 0, fmt.Errorf("camera: place on orbit: %w", err)
	}
	return camera, nil
}
