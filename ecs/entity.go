package ecs

import "fmt"

// Entity is an opaque handle to a row in the world. The Index identifies the
// slot; Generation is bumped on every Despawn so that stale handles held past
// a despawn can be detected and ignored rather than aliasing a reused slot.
type Entity struct {
	Index      uint32
	Generation uint32
}

// String renders an entity as "index:generation", matching the format used
// in save-slot diagnostics and test failure output.
func (e Entity) String() string {
	return fmt.Sprintf("%d:%d", e.Index, e.Generation)
}

// entityRecord is the world's bookkeeping for a single entity slot.
type entityRecord struct {
	generation uint32
	alive      bool
	archetype  *Archetype
	row        int
}

// Spawn allocates a fresh entity. A newly spawned entity has no components
// and lives in the empty archetype until the first Insert migrates it.
func (w *World) Spawn() Entity {
	if n := len(w.freeList); n > 0 {
		idx := w.freeList[n-1]
		w.freeList = w.freeList[:n-1]
		rec := &w.entities[idx]
		rec.alive = true
		rec.archetype = w.emptyArchetype
		rec.row = w.emptyArchetype.appendEntity(Entity{Index: idx, Generation: rec.generation})
		return Entity{Index: idx, Generation: rec.generation}
	}
	idx := uint32(len(w.entities))
	w.entities = append(w.entities, entityRecord{generation: 0, alive: true})
	rec := &w.entities[idx]
	rec.archetype = w.emptyArchetype
	rec.row = w.emptyArchetype.appendEntity(Entity{Index: idx, Generation: 0})
	return Entity{Index: idx, Generation: 0}
}

// IsAlive reports whether e still refers to a live entity at its recorded
// generation. A stale handle (generation mismatch) is never alive.
func (w *World) IsAlive(e Entity) bool {
	if int(e.Index) >= len(w.entities) {
		return false
	}
	rec := w.entities[e.Index]
	return rec.alive && rec.generation == e.Generation
}

// Despawn drops every component column value for e and bumps its generation
// so outstanding handles go stale. Despawning a dead or stale entity is a
// no-op rather than an error: structural failures never propagate as faults.
func (w *World) Despawn(e Entity) {
	if !w.IsAlive(e) {
		return
	}
	rec := &w.entities[e.Index]
	rec.archetype.removeEntity(rec.row, w)
	rec.alive = false
	rec.generation++
	rec.archetype = nil
	rec.row = -1
	w.freeList = append(w.freeList, e.Index)
}

// RestoreEntity reconstructs an entity at an exact index/generation pair,
// growing the entity table and marking any skipped indices as free. It is
// used exclusively by the persistence deserializer, which must reproduce the
// original handles bit-for-bit because other components may reference them.
// Restoring an index twice overwrites the earlier record. The deserializer
// walks archetypes in canonical signature order rather than original spawn
// order, so a later call can restore an index an earlier call on the same
// world provisionally marked free as a skipped gap; removing it from
// freeList here keeps the invariant that freeList only ever names entities
// that are not alive.
func (w *World) RestoreEntity(index, generation uint32) Entity {
	for uint32(len(w.entities)) <= index {
		gap := uint32(len(w.entities))
		w.entities = append(w.entities, entityRecord{})
		if gap != index {
			w.freeList = append(w.freeList, gap)
		}
	}
	w.removeFromFreeList(index)
	rec := &w.entities[index]
	rec.generation = generation
	rec.alive = true
	rec.archetype = w.emptyArchetype
	rec.row = w.emptyArchetype.appendEntity(Entity{Index: index, Generation: generation})
	return Entity{Index: index, Generation: generation}
}

// removeFromFreeList drops index from the free list if present.
func (w *World) removeFromFreeList(index uint32) {
	for i, idx := range w.freeList {
		if idx == index {
			w.freeList = append(w.freeList[:i], w.freeList[i+1:]...)
			return
		}
	}
}

func (w *World) recordFor(e Entity) (*entityRecord, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	return &w.entities[e.Index], true
}
