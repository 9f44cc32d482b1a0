package ecs

import (
	"errors"

	"github.com/milk9111/cubehop/ecs/component"
)

var (
	ErrNoMatch         = errors.New("ecs: no entity matches singleton query")
	ErrMultipleMatches = errors.New("ecs: more than one entity matches singleton query")
)

// KindID is satisfied by every component.ComponentKind and lets queries mix
// component types.
type KindID interface {
	ID() component.ComponentID
}

// Filter selects entities that have every With kind and none of the
// Exclude kinds.
type Filter struct {
	With    []KindID
	Exclude []KindID
}

// With starts a filter over the given kinds.
func With(kinds ...KindID) Filter {
	return Filter{With: kinds}
}

// Without returns f with additional excluded kinds.
func (f Filter) Without(kinds ...KindID) Filter {
	f.Exclude = append(append([]KindID(nil), f.Exclude...), kinds...)
	return f
}

// Query returns live entities that carry every given kind.
func (w *World) Query(kinds ...KindID) []Entity {
	return w.QueryFilter(With(kinds...))
}

// QueryFilter returns live entities matching f, in the dense order of the
// smallest required store.
func (w *World) QueryFilter(f Filter) []Entity {
	if w == nil || len(f.With) == 0 {
		return nil
	}
	required := make([]*SparseSet, 0, len(f.With))
	for _, k := range f.With {
		s := w.store(k.ID(), false)
		if s.Len() == 0 {
			return nil
		}
		required = append(required, s)
	}
	// iterate smallest set
	smallest := required[0]
	for _, s := range required[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	excluded := make([]*SparseSet, 0, len(f.Exclude))
	for _, k := range f.Exclude {
		if s := w.store(k.ID(), false); s.Len() > 0 {
			excluded = append(excluded, s)
		}
	}

	var out []Entity
outer:
	for _, id := range smallest.ids() {
		e, ok := w.entities.entityFor(id)
		if !ok {
			continue
		}
		for _, s := range required {
			if !s.Has(id) {
				continue outer
			}
		}
		for _, s := range excluded {
			if s.Has(id) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// SingleMatch is the result of a query that expects exactly one entity.
type SingleMatch struct {
	Entity Entity
	Count  int
}

// Found reports whether exactly one entity matched.
func (m SingleMatch) Found() bool {
	return m.Count == 1
}

// Err classifies a match that is not exactly one entity.
func (m SingleMatch) Err() error {
	switch {
	case m.Count == 0:
		return ErrNoMatch
	case m.Count > 1:
		return ErrMultipleMatches
	}
	return nil
}

// Single runs a singleton query. Callers skip their work unless Found.
func (w *World) Single(f Filter) SingleMatch {
	ents := w.QueryFilter(f)
	m := SingleMatch{Count: len(ents)}
	if len(ents) == 1 {
		m.Entity = ents[0]
	}
	return m
}

func ForEach[A any](w *World, ka component.ComponentKind[A], fn func(Entity, *A)) {
	for _, e := range w.Query(ka) {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ka, kb) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if !okA || !okB {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range w.Query(ka, kb, kc) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, a, b, c)
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	for _, e := range w.Query(ka, kb, kc, kd) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		d, okD := Get(w, e, kd)
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(e, a, b, c, d)
	}
}
