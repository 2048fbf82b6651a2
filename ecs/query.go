package ecs

// Query returns the live entities carrying every kind, in the storage order
// of the smallest store.
func (w *World) Query(kinds ...ComponentKey) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.stores[k.ID()]
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}

	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.Len())
	for _, id := range smallest.ids() {
		if !intersects(id, sets) {
			continue
		}
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}

func intersects(id entityID, sets []*SparseSet) bool {
	for _, s := range sets {
		if !s.Has(id) {
			return false
		}
	}
	return true
}
