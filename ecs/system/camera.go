package system

import (
	"github.com/milk9111/cubehop/common"
	"github.com/milk9111/cubehop/config"
	"github.com/milk9111/cubehop/ecs"
	"github.com/milk9111/cubehop/ecs/component"
	"github.com/milk9111/cubehop/input"
)

// OrbitCameraSystem steers the orbit camera with pointer motion, eases it
// toward its orbit position around the player and points it at the player.
type OrbitCameraSystem struct {
	pointer input.Pointer
	config  *config.Provider
}

func NewOrbitCameraSystem(pointer input.Pointer, cfg *config.Provider) *OrbitCameraSystem {
	return &OrbitCameraSystem{pointer: pointer, config: cfg}
}

var (
	cameraTargetQuery = ecs.With(
		component.PlayerTagComponent.Kind(),
		component.TransformComponent.Kind(),
	).Without(component.CameraTagComponent.Kind())

	orbitCameraQuery = ecs.With(
		component.CameraTagComponent.Kind(),
		component.OrbitCameraComponent.Kind(),
		component.TransformComponent.Kind(),
	).Without(component.PlayerTagComponent.Kind())
)

func (cs *OrbitCameraSystem) Update(w *ecs.World) {
	if w == nil || cs.config == nil {
		return
	}

	target := w.Single(cameraTargetQuery)
	cam := w.Single(orbitCameraQuery)
	if !target.Found() || !cam.Found() {
		return
	}

	targetTransform, _ := ecs.Get(w, target.Entity, component.TransformComponent.Kind())
	camTransform, _ := ecs.Get(w, cam.Entity, component.TransformComponent.Kind())
	orbit, _ := ecs.Get(w, cam.Entity, component.OrbitCameraComponent.Kind())

	if cs.pointer != nil && cs.pointer.Captured() {
		if in, ok := ecs.Get(w, cam.Entity, component.InputComponent.Kind()); ok {
			kb := cs.config.Current().Bindings
			orbit.Rotate(in.PointerMotion, kb.HorizontalSensitivity, kb.VerticalSensitivity)
		}
	}

	origin := targetTransform.Position
	desired := orbit.OrbitPosition(origin)
	camTransform.Position = common.LerpVec3(camTransform.Position, desired, orbit.LagAmount)
	if q, ok := common.LookRotation(camTransform.Position, origin, common.Up); ok {
		camTransform.Rotation = q
	}
}
