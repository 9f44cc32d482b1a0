package ecs

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) {
	f(w)
}

// StartupSystem runs once before the first tick.
type StartupSystem interface {
	Startup(w *World) error
}

// StartupFunc adapts a function to StartupSystem.
type StartupFunc func(w *World) error

func (f StartupFunc) Startup(w *World) error {
	return f(w)
}

// Scheduler runs startup systems once and then update systems in
// registration order every tick.
type Scheduler struct {
	startup []StartupSystem
	systems []System
	started bool
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) AddStartup(system StartupSystem) {
	if system == nil {
		return
	}
	s.startup = append(s.startup, system)
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Startup runs every startup system in order, stopping at the first error.
// Later calls are no-ops once startup succeeded.
func (s *Scheduler) Startup(w *World) error {
	if s.started {
		return nil
	}
	for _, system := range s.startup {
		if err := system.Startup(w); err != nil {
			return err
		}
	}
	s.started = true
	return nil
}

// Update runs one tick and clears events raised during it.
func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
	w.Events().flush()
}
