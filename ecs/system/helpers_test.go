package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/cubehop/config"
	"github.com/milk9111/cubehop/ecs"
	"github.com/milk9111/cubehop/ecs/component"
)

func testConfig(t *testing.T) *config.Provider {
	t.Helper()
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return config.NewProvider(cfg)
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

// spawnActor builds a player-like entity without going through prefabs.
func spawnActor(t *testing.T, w *ecs.World, pos mgl64.Vec3, half float64, maxJumps int) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	tr := component.NewTransform(pos)
	jumps := component.NewJumpBudget(maxJumps)
	mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, e, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: 1})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &tr)
	mustAdd(t, w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Volume: component.Cube{HalfExtents: mgl64.Vec3{half, half, half}},
	})
	mustAdd(t, w, e, component.GravityTagComponent.Kind(), &component.GravityTag{})
	mustAdd(t, w, e, component.JumpBudgetComponent.Kind(), &jumps)
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{})
	return e
}

func spawnOrbitCamera(t *testing.T, w *ecs.World, orbit component.OrbitCamera, pos mgl64.Vec3) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	tr := component.NewTransform(pos)
	mustAdd(t, w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &tr)
	mustAdd(t, w, e, component.OrbitCameraComponent.Kind(), &orbit)
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{})
	return e
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	return tr
}

func velocityOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Velocity {
	t.Helper()
	v, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no velocity", e)
	}
	return v
}

func jumpsOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.JumpBudget {
	t.Helper()
	j, ok := ecs.Get(w, e, component.JumpBudgetComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no jump budget", e)
	}
	return j
}

func inputOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Input {
	t.Helper()
	in, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no input", e)
	}
	return in
}

func withTime(w *ecs.World, dt, scale float64) {
	w.SetTime(ecs.Time{Delta: dt, Scale: scale})
}
