package ecs

import "reflect"

type cmdKind int

const (
	cmdSpawn cmdKind = iota
	cmdDespawn
	cmdInsert
	cmdRemove
)

type command struct {
	kind    cmdKind
	entity  Entity
	typ     reflect.Type
	value   any
	spawnID int // not set or read; placeholders carry their command index in Entity.Index
}

// CommandBuffer queues structural mutations (spawn, despawn, type-erased
// insert/remove) produced while iterating the world, so that iteration
// never observes a half-applied migration. The scheduler flushes the
// buffer after every stage.
//
// SpawnDeferred returns a placeholder handle usable as the target of Insert
// calls queued in the same buffer, before the entity actually exists; Flush
// resolves placeholders to real entities in queue order.
type CommandBuffer struct {
	cmds     []command
	spawned  []Entity // not populated; Flush resolves placeholders through a local map
	registry *TypeRegistry
}

// placeholderBit marks an Entity.Index produced by SpawnDeferred so Flush
// can recognize it needs resolution against the entities its spawns create.
const placeholderBit = uint32(1) << 31

// NewCommandBuffer returns an empty buffer that resolves type-erased
// insert/remove commands using tr.
func NewCommandBuffer(tr *TypeRegistry) *CommandBuffer {
	return &CommandBuffer{registry: tr}
}

// SpawnDeferred queues a spawn and returns a placeholder entity that can be
// used as the target of InsertDeferred calls in the same buffer before
// Flush actually creates the entity.
func (cb *CommandBuffer) SpawnDeferred() Entity {
	idx := len(cb.cmds)
	cb.cmds = append(cb.cmds, command{kind: cmdSpawn})
	return Entity{Index: placeholderBit | uint32(idx)}
}

// Despawn queues e for despawn at the next Flush.
func (cb *CommandBuffer) Despawn(e Entity) {
	cb.cmds = append(cb.cmds, command{kind: cmdDespawn, entity: e})
}

// InsertDeferred queues a type-erased component insert for e, resolved via
// the buffer's TypeRegistry at Flush. e may be a placeholder returned by
// SpawnDeferred earlier in the same buffer.
func InsertDeferred[T any](cb *CommandBuffer, e Entity, value T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	cb.cmds = append(cb.cmds, command{kind: cmdInsert, entity: e, typ: t, value: value})
}

// RemoveDeferred queues a type-erased component removal for e.
func RemoveDeferred[T any](cb *CommandBuffer, e Entity) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	cb.cmds = append(cb.cmds, command{kind: cmdRemove, entity: e, typ: t})
}

// Flush applies every queued command to w in enqueue order and empties the
// buffer. Placeholder entities from SpawnDeferred resolve to the real
// entity the matching spawn produced.
func (cb *CommandBuffer) Flush(w *World) {
	resolved := make(map[uint32]Entity)
	for i, c := range cb.cmds {
		switch c.kind {
		case cmdSpawn:
			resolved[placeholderBit|uint32(i)] = w.Spawn()
		}
	}
	resolve := func(e Entity) Entity {
		if e.Index&placeholderBit != 0 {
			if real, ok := resolved[e.Index]; ok {
				return real
			}
			return Entity{} // unresolved placeholder, should not occur
		}
		return e
	}
	for _, c := range cb.cmds {
		switch c.kind {
		case cmdSpawn:
			// already applied above
		case cmdDespawn:
			w.Despawn(resolve(c.entity))
		case cmdInsert:
			w.insertBoxed(resolve(c.entity), c.typ, c.value)
		case cmdRemove:
			w.removeBoxed(resolve(c.entity), c.typ)
		}
	}
	cb.cmds = cb.cmds[:0]
}

// insertBoxed performs a type-erased Insert using the world's TypeRegistry
// to create/locate the destination column. Panics if typ was never
// registered (programmer error, not a gameplay failure).
func (w *World) insertBoxed(e Entity, t reflect.Type, value any) {
	if !w.typeRegistry.IsRegistered(t) {
		panic("ecs: insertBoxed of unregistered type " + t.String())
	}
	rec, ok := w.recordFor(e)
	if !ok {
		return
	}
	if rec.archetype.signature.Has(t) {
		col, _ := rec.archetype.column(t)
		col.set(rec.row, value)
		return
	}
	newSig := rec.archetype.signature.with(t)
	rec = w.migrate(e, newSig)
	col, _ := rec.archetype.column(t)
	col.set(rec.row, value)
}

func (w *World) removeBoxed(e Entity, t reflect.Type) {
	rec, ok := w.recordFor(e)
	if !ok {
		return
	}
	if !rec.archetype.signature.Has(t) {
		return
	}
	w.migrate(e, rec.archetype.signature.without(t))
}
