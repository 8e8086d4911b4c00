package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astraweave-go/astraweave/ecs"
)

func TestCommandBufferDefersStructuralMutation(t *testing.T) {
	w := newTestWorld(t)
	e := w.Spawn()
	ecs.Insert(w, e, health{HP: 10})

	cb := ecs.NewCommandBuffer(w.TypeRegistry())
	ecs.InsertDeferred(cb, e, position{X: 5, Y: 5})

	_, ok := ecs.Get[position](w, e)
	assert.False(t, ok, "queued insert has not applied yet")

	cb.Flush(w)
	pos, ok := ecs.Get[position](w, e)
	require.True(t, ok)
	assert.Equal(t, position{X: 5, Y: 5}, pos)
}

func TestCommandBufferSpawnPlaceholderResolves(t *testing.T) {
	w := newTestWorld(t)
	cb := ecs.NewCommandBuffer(w.TypeRegistry())

	placeholder := cb.SpawnDeferred()
	ecs.InsertDeferred(cb, placeholder, position{X: 7, Y: 8})

	cb.Flush(w)

	found := false
	ecs.Query1(w, func(_ ecs.Entity, p *position) {
		if *p == (position{X: 7, Y: 8}) {
			found = true
		}
	})
	assert.True(t, found)
}

func TestCommandBufferDespawnAndRemove(t *testing.T) {
	w := newTestWorld(t)
	e1 := w.Spawn()
	ecs.Insert(w, e1, health{HP: 1})
	e2 := w.Spawn()
	ecs.Insert(w, e2, health{HP: 1})
	ecs.Insert(w, e2, position{X: 1, Y: 1})

	cb := ecs.NewCommandBuffer(w.TypeRegistry())
	cb.Despawn(e1)
	ecs.RemoveDeferred[position](cb, e2)
	cb.Flush(w)

	assert.False(t, w.IsAlive(e1))
	assert.False(t, ecs.Has[position](w, e2))
	assert.True(t, ecs.Has[health](w, e2))
}
