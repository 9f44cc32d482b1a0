package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/cubehop/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for dead entity")
				}
			}
		})
	}
}

func TestRecycledIDGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected id %d to be recycled, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("recycled entity must not equal stale handle")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("recycled entity inherited a destroyed component")
	}
	if _, ok := Get(w, old, h.Kind()); ok {
		t.Fatalf("stale handle returned a component")
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestSparseWorldComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				if got := len(w.Query(h2.Kind())); got != 2 {
					t.Fatalf("expected 2 entities in query, got %d", got)
				}
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)
	dead := CreateEntity(w)
	DestroyEntity(w, dead)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil_value", Add(w, e, h.Kind(), nil), component.ErrNilComponent},
		{"dead_entity", Add(w, dead, h.Kind(), intPtr(1)), component.ErrEntityNotAlive},
		{"zero_kind", Add(w, e, component.ComponentKind[int]{}, intPtr(1)), component.ErrInvalidComponentKind},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, tc.err)
			}
		})
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var ents []Entity
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		*v *= 10
		ents = append(ents, e)
	})
	set := toSet(ents)
	if _, ok := set[e1]; !ok {
		t.Fatalf("expected e1 in ForEach result")
	}
	if _, ok := set[e3]; !ok {
		t.Fatalf("expected e3 in ForEach result")
	}
	if _, ok := set[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}
	if v, _ := Get(w, e3, h.Kind()); *v != 30 {
		t.Fatalf("expected ForEach to mutate in place, got %d", *v)
	}
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)
				e4 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				for _, add := range []error{
					Add(w, e1, ka, intPtr(1)),
					Add(w, e2, ka, intPtr(2)),
					Add(w, e2, kb, intPtr(3)),
					Add(w, e2, kc, intPtr(5)),
					Add(w, e3, kb, intPtr(4)),
					Add(w, e4, kc, intPtr(6)),
				} {
					if add != nil {
						t.Fatal(add)
					}
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0].id() != e2.id() {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				for _, k := range []component.ComponentKind[int]{ka, kb, kc} {
					if err := Add(w, e, k, intPtr(1)); err != nil {
						t.Fatal(err)
					}
				}

				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestQueryFilterWithout(t *testing.T) {
	w := NewWorld()
	pos := component.NewComponentKind[int]()
	tag := component.NewComponentKind[struct{}]()

	plain := CreateEntity(w)
	tagged := CreateEntity(w)
	_ = Add(w, plain, pos, intPtr(1))
	_ = Add(w, tagged, pos, intPtr(2))
	_ = Add(w, tagged, tag, &struct{}{})

	got := w.QueryFilter(With(pos).Without(tag))
	if len(got) != 1 || got[0] != plain {
		t.Fatalf("expected only untagged entity, got %v", got)
	}
}

func TestFilterWithoutDoesNotAlias(t *testing.T) {
	pos := component.NewComponentKind[int]()
	tagA := component.NewComponentKind[struct{}]()
	tagB := component.NewComponentKind[string]()

	base := With(pos).Without(tagA)
	narrowed := base.Without(tagB)

	if len(base.Exclude) != 1 || base.Exclude[0].ID() != tagA.ID() {
		t.Fatalf("base filter modified: %v", base.Exclude)
	}
	if len(narrowed.Exclude) != 2 || narrowed.Exclude[1].ID() != tagB.ID() {
		t.Fatalf("narrowed filter = %v, expected both tags", narrowed.Exclude)
	}

	w := NewWorld()
	e := CreateEntity(w)
	_ = Add(w, e, pos, intPtr(1))
	s := "b"
	_ = Add(w, e, tagB, &s)
	if got := w.QueryFilter(base); len(got) != 1 {
		t.Fatalf("base filter matched %v, expected the entity", got)
	}
	if got := w.QueryFilter(narrowed); len(got) != 0 {
		t.Fatalf("narrowed filter matched %v, expected nothing", got)
	}
}

func TestSingle(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		found   bool
		wantErr error
	}{
		{"none", 0, false, ErrNoMatch},
		{"one", 1, true, nil},
		{"many", 2, false, ErrMultipleMatches},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			k := component.NewComponentKind[int]()
			var last Entity
			for i := 0; i < tc.count; i++ {
				last = CreateEntity(w)
				_ = Add(w, last, k, intPtr(i))
			}
			m := w.Single(With(k))
			if m.Found() != tc.found {
				t.Fatalf("Found() = %v, expected %v", m.Found(), tc.found)
			}
			if !errors.Is(m.Err(), tc.wantErr) {
				t.Fatalf("Err() = %v, expected %v", m.Err(), tc.wantErr)
			}
			if tc.found && m.Entity != last {
				t.Fatalf("expected entity %v, got %v", last, m.Entity)
			}
		})
	}
}

func TestSchedulerOrderAndStartupOnce(t *testing.T) {
	w := NewWorld()
	var order []string
	startups := 0

	s := NewScheduler(SystemFunc(func(w *World) { order = append(order, "a") }))
	s.Add(SystemFunc(func(w *World) {
		order = append(order, "b")
		w.Events().Push(Event{Type: "tick"})
	}))
	s.AddStartup(StartupFunc(func(w *World) error {
		startups++
		return nil
	}))

	if err := s.Startup(w); err != nil {
		t.Fatal(err)
	}
	if err := s.Startup(w); err != nil {
		t.Fatal(err)
	}
	if startups != 1 {
		t.Fatalf("expected startup to run once, ran %d", startups)
	}

	s.Update(w)
	s.Update(w)
	if len(order) != 4 || order[0] != "a" || order[1] != "b" || order[2] != "a" {
		t.Fatalf("unexpected order %v", order)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("expected events flushed after tick")
	}
}

func TestSchedulerStartupError(t *testing.T) {
	w := NewWorld()
	boom := errors.New("boom")
	ran := false

	s := NewScheduler()
	s.AddStartup(StartupFunc(func(*World) error { return boom }))
	s.AddStartup(StartupFunc(func(*World) error { ran = true; return nil }))

	if err := s.Startup(w); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if ran {
		t.Fatalf("startup continued after error")
	}
}
