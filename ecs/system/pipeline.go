package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/cubehop/config"
	"github.com/milk9111/cubehop/ecs"
	"github.com/milk9111/cubehop/input"
)

// Deps are the collaborators the pipeline consumes.
type Deps struct {
	Source  input.Source
	Pointer input.Pointer
	Clock   Clock
	Config  *config.Provider
	// SpawnAt overrides the player's prefab position when set.
	SpawnAt *mgl64.Vec3
	// OnEvent receives every movement event raised during a tick.
	OnEvent func(ecs.Event)
}

// NewPipeline registers the startup systems and the per-tick systems in
// the order the simulation depends on: time and input sampling, cursor
// control, grounded reset, input mapping and jump trigger, gravity,
// integration, camera, events.
func NewPipeline(d Deps) *ecs.Scheduler {
	if d.Config == nil {
		d.Config = config.NewProvider(nil)
	}

	s := ecs.NewScheduler()
	if d.SpawnAt != nil {
		s.AddStartup(SpawnPlayerAt(*d.SpawnAt))
	} else {
		s.AddStartup(ecs.StartupFunc(SpawnPlayer))
	}
	s.AddStartup(ecs.StartupFunc(SpawnCamera))
	s.AddStartup(CaptureCursorAtStartup(d.Pointer))
	s.AddStartup(ecs.StartupFunc(ValidateSingletons))

	s.Add(NewTimeSystem(d.Clock, d.Config))
	s.Add(NewInputSystem(d.Source, d.Config))
	s.Add(NewCursorControlSystem(d.Source, d.Pointer, d.Config))
	s.Add(NewJumpResetSystem())
	s.Add(NewPlayerControllerSystem(d.Config))
	s.Add(NewGravitySystem(d.Config))
	s.Add(NewMovementSystem())
	s.Add(NewOrbitCameraSystem(d.Pointer, d.Config))
	s.Add(NewEventLogSystem(d.OnEvent))
	return s
}
