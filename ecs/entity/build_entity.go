package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/cubehop/ecs"
	"github.com/milk9111/cubehop/ecs/component"
	"github.com/milk9111/cubehop/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"camera_tag":   addCameraTag,
	"player":       addPlayer,
	"input":        addInput,
	"transform":    addTransform,
	"velocity":     addVelocity,
	"physics_body": addPhysicsBody,
	"gravity":      addGravity,
	"jump_budget":  addJumpBudget,
	"orbit_camera": addOrbitCamera,
}

var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"player",
	"input",
	"transform",
	"velocity",
	"physics_body",
	"gravity",
	"jump_budget",
	"orbit_camera",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return buildFromSpec(w, spec, prefabPath)
}

func buildFromSpec(w *ecs.World, spec prefabs.EntityBuildSpec, prefabPath string) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	var unknown []string
	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return 0, fmt.Errorf("build entity: %q: no builder for components %s", prefabPath, strings.Join(unknown, ", "))
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}
	for _, name := range componentBuildOrder {
		raw, ok := spec.Components[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

// SetEntityPosition moves e, creating an unrotated transform if needed.
func SetEntityPosition(w *ecs.World, e ecs.Entity, position mgl64.Vec3) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		fresh := component.NewTransform(position)
		return ecs.Add(w, e, component.TransformComponent.Kind(), &fresh)
	}
	t.Position = position
	return nil
}

func vec3(s prefabs.Vec3Spec) mgl64.Vec3 {
	return mgl64.Vec3{s.X, s.Y, s.Z}
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addGravity(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.GravityTagComponent.Kind(), &component.GravityTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	speed := spec.MoveSpeed
	if speed == 0 {
		speed = 1
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: speed})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	t := component.NewTransform(vec3(spec.Position))
	return ecs.Add(w, e, component.TransformComponent.Kind(), &t)
}

type velocitySpec = prefabs.VelocityComponentSpec

func addVelocity(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[velocitySpec](raw)
	if err != nil {
		return fmt.Errorf("decode velocity spec: %w", err)
	}
	return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{Value: vec3(spec.Value)})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics_body spec: %w", err)
	}

	var volume component.BoundingVolume
	switch strings.ToLower(spec.Shape) {
	case "", "cube":
		switch {
		case spec.HalfExtents != nil && spec.Size != nil:
			return fmt.Errorf("physics_body: set size or half_extents, not both")
		case spec.HalfExtents != nil:
			volume = component.Cube{HalfExtents: vec3(*spec.HalfExtents)}
		case spec.Size != nil:
			volume = component.CubeFromSize(vec3(*spec.Size))
		default:
			return fmt.Errorf("physics_body: cube needs size or half_extents")
		}
	default:
		return fmt.Errorf("physics_body: unsupported shape %q", spec.Shape)
	}

	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Volume: volume})
}

type jumpBudgetSpec = prefabs.JumpBudgetComponentSpec

func addJumpBudget(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[jumpBudgetSpec](raw)
	if err != nil {
		return fmt.Errorf("decode jump_budget spec: %w", err)
	}
	if spec.MaxJumps < 0 {
		return fmt.Errorf("jump_budget: max_jumps must be >= 0, got %d", spec.MaxJumps)
	}
	budget := component.NewJumpBudget(spec.MaxJumps)
	return ecs.Add(w, e, component.JumpBudgetComponent.Kind(), &budget)
}

type orbitCameraSpec = prefabs.OrbitCameraComponentSpec

func addOrbitCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[orbitCameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode orbit_camera spec: %w", err)
	}

	lag := spec.LagAmount
	if lag == 0 {
		lag = 0.1
	}
	if lag < 0 || lag > 1 {
		return fmt.Errorf("orbit_camera: lag_amount must be in (0, 1], got %v", lag)
	}
	distance := spec.OrbitDistance
	if distance == 0 {
		distance = 10
	}
	if distance < 0 {
		return fmt.Errorf("orbit_camera: orbit_distance must be > 0, got %v", distance)
	}
	pitch := mgl64.DegToRad(spec.Pitch)
	if pitch < -mgl64.DegToRad(90) || pitch > mgl64.DegToRad(90) {
		return fmt.Errorf("orbit_camera: pitch must be within [-90, 90] degrees, got %v", spec.Pitch)
	}

	return ecs.Add(w, e, component.OrbitCameraComponent.Kind(), &component.OrbitCamera{
		LagAmount:     lag,
		OrbitDistance: distance,
		Pitch:         pitch,
		Yaw:           mgl64.DegToRad(spec.Yaw),
	})
}
