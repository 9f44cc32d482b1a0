package ecs

import "github.com/milk9111/cubehop/ecs/component"

// Time is the per-tick elapsed-time resource.
type Time struct {
	Delta float64
	Scale float64
}

// Step returns the scaled delta applied to velocities this tick.
func (t Time) Step() float64 {
	return t.Delta * t.Scale
}

// World owns entities, component stores, per-tick time and events.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	time     Time
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
		time:   Time{Scale: 1},
	}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its id. It reports
// false if e was not alive.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return IsAlive(w, e)
}

// SetTime installs the elapsed-time resource for the next tick.
func (w *World) SetTime(t Time) {
	if w == nil {
		return
	}
	w.time = t
}

// Time returns the elapsed-time resource for the current tick.
func (w *World) Time() Time {
	if w == nil {
		return Time{}
	}
	return w.time
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
