package ecs

import (
	"fmt"

	"github.com/milk9111/cubehop/ecs/component"
)

// Add attaches value to e, replacing any component of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return fmt.Errorf("add %s to %v: %w", kind.Name(), e, component.ErrEntityNotAlive)
	}
	if !kind.Valid() {
		return fmt.Errorf("add %s to %v: %w", kind.Name(), e, component.ErrInvalidComponentKind)
	}
	if value == nil {
		return fmt.Errorf("add %s to %v: %w", kind.Name(), e, component.ErrNilComponent)
	}
	w.store(kind.ID(), true).Set(e.id(), value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Has(e.id())
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(e.id()).(*T)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}
