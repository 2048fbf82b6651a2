package ecs

import (
	"github.com/milk9111/climber/ecs/component"
)

// World owns entities, their component stores and the per-tick event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet

	Events EventQueue
}

func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
	}
}

func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes the entity and every component attached to it.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e.id())
	}
	return w.entities.destroy(e)
}

func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Clear destroys every entity and drops pending events.
func (w *World) Clear() {
	if w == nil {
		return
	}
	for _, e := range w.entities.all() {
		w.DestroyEntity(e)
	}
	w.Events.flush()
}

func (w *World) RemoveComponent(e Entity, kind ComponentKey) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.stores[kind.ID()].Remove(e.id())
}

func (w *World) HasComponent(e Entity, kind ComponentKey) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.stores[kind.ID()].Has(e.id())
}

func (w *World) store(id component.ComponentID) *SparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// First returns the first live entity carrying kind.
func (w *World) First(kind ComponentKey) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	for _, id := range w.stores[kind.ID()].ids() {
		if e, ok := w.entities.handle(id); ok {
			return e, true
		}
	}
	return 0, false
}
