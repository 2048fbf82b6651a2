package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/climber/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
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
					t.Fatalf("DestroyEntity should return false the second time")
				}
			}
		})
	}
}

func TestWorldRecycledEntityIsNewHandle(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh == old {
		t.Fatalf("recycled entity reused stale handle %s", old)
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle %s reported alive", old)
	}
	if _, ok := Get(w, fresh, h.Kind()); ok {
		t.Fatalf("recycled entity inherited a component")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("add to stale handle err = %v, want ErrEntityNotAlive", err)
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()
	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name  string
		setup func() error
		check func(t *testing.T)
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v (ok=%v)", v, ok)
				}
			},
		},
		{
			name:  "replace_int_on_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(11)) },
			check: func(t *testing.T) {
				v, _ := Get(w, e1, h1.Kind())
				if *v != 11 {
					t.Fatalf("expected 11, got %d", *v)
				}
			},
		},
		{
			name:  "add_string_to_e2",
			setup: func() error { return Add(w, e2, h2.Kind(), stringPtr("floor")) },
			check: func(t *testing.T) {
				if !Has(w, e2, h2.Kind()) {
					t.Fatalf("e2 should have string component")
				}
				if Has(w, e1, h2.Kind()) {
					t.Fatalf("e1 should not have string component")
				}
			},
		},
		{
			name:  "nil_value_rejected",
			setup: func() error {
				if err := Add(w, e2, h1.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
					return errors.New("expected ErrNilComponent")
				}
				return nil
			},
			check: func(t *testing.T) {
				if Has(w, e2, h1.Kind()) {
					t.Fatalf("nil add should not attach a component")
				}
			},
		},
		{
			name:  "remove_int_from_e1",
			setup: func() error { return Remove(w, e1, h1.Kind()) },
			check: func(t *testing.T) {
				if Has(w, e1, h1.Kind()) {
					t.Fatalf("e1 still has int component")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.setup(); err != nil {
				t.Fatalf("setup: %v", err)
			}
			tt.check(t)
		})
	}
}

func TestWorldQueryAndForEach(t *testing.T) {
	w := NewWorld()
	pos := component.NewComponent[float64]()
	tag := component.NewComponent[string]()

	a := CreateEntity(w)
	b := CreateEntity(w)
	c := CreateEntity(w)
	for i, e := range []Entity{a, b, c} {
		f := float64(i)
		_ = Add(w, e, pos.Kind(), &f)
	}
	_ = Add(w, b, tag.Kind(), stringPtr("player"))

	if got := w.Query(pos.Kind(), tag.Kind()); len(got) != 1 || got[0] != b {
		t.Fatalf("query = %v, want [%s]", got, b)
	}
	if got := w.Query(pos.Kind()); len(got) != 3 {
		t.Fatalf("query pos returned %d entities, want 3", len(got))
	}

	first, ok := First(w, tag.Kind())
	if !ok || first != b {
		t.Fatalf("First = %s, %v; want %s", first, ok, b)
	}

	sum := 0.0
	ForEach(w, pos.Kind(), func(_ Entity, v *float64) {
		sum += *v
		*v += 10
	})
	if sum != 3 {
		t.Fatalf("ForEach sum = %v, want 3", sum)
	}
	if v, _ := Get(w, a, pos.Kind()); *v != 10 {
		t.Fatalf("ForEach should mutate through pointer, got %v", *v)
	}

	visited := 0
	ForEach2(w, pos.Kind(), tag.Kind(), func(e Entity, _ *float64, s *string) {
		visited++
		if e != b || *s != "player" {
			t.Fatalf("ForEach2 visited %s (%q)", e, *s)
		}
	})
	if visited != 1 {
		t.Fatalf("ForEach2 visited %d entities, want 1", visited)
	}

	DestroyEntity(w, b)
	if _, ok := First(w, tag.Kind()); ok {
		t.Fatalf("destroyed entity still returned by First")
	}
	if got := w.Query(pos.Kind()); len(got) != 2 {
		t.Fatalf("query after destroy returned %d entities, want 2", len(got))
	}
}

func TestWorldClear(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	for i := 0; i < 4; i++ {
		_ = Add(w, CreateEntity(w), h.Kind(), intPtr(i))
	}
	w.Events.Push(Event{Type: EventDied})

	w.Clear()

	if n := len(Entities(w)); n != 0 {
		t.Fatalf("expected no entities after Clear, got %d", n)
	}
	if w.Events.Len() != 0 {
		t.Fatalf("expected events flushed after Clear")
	}
}

func TestEventQueueTake(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventFloorContact, Data: 1})
	q.Push(Event{Type: EventClimbed})
	q.Push(Event{Type: EventFloorContact, Data: 2})

	got := q.Take(EventFloorContact)
	if len(got) != 2 || got[0].Data != 1 || got[1].Data != 2 {
		t.Fatalf("Take returned %v", got)
	}
	rest := q.Drain()
	if len(rest) != 1 || rest[0].Type != EventClimbed {
		t.Fatalf("Drain after Take returned %v", rest)
	}
	if q.Drain() != nil {
		t.Fatalf("queue should be empty")
	}
}

type countingSystem struct {
	calls *[]string
	name  string
}

func (s countingSystem) Update(*World) {
	*s.calls = append(*s.calls, s.name)
}

func TestSchedulerRunsInOrder(t *testing.T) {
	var calls []string
	s := NewScheduler(
		countingSystem{calls: &calls, name: "input"},
		nil,
		countingSystem{calls: &calls, name: "physics"},
	)
	s.Add(countingSystem{calls: &calls, name: "render"})

	s.Update(NewWorld())

	want := []string{"input", "physics", "render"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("expected 3 systems, got %d", len(s.Systems()))
	}
}
