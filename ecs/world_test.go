package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astraweave-go/astraweave/ecs"
)

type position struct{ X, Y int32 }
type health struct{ HP int32 }
type team struct{ ID uint8 }

func newTestWorld(t *testing.T) *ecs.World {
	t.Helper()
	tr := ecs.NewTypeRegistry()
	ecs.Register[position](tr)
	ecs.Register[health](tr)
	ecs.Register[team](tr)
	return ecs.NewWorld(tr)
}

func TestSpawnDespawnGeneration(t *testing.T) {
	w := newTestWorld(t)
	e := w.Spawn()
	require.True(t, w.IsAlive(e))

	w.Despawn(e)
	assert.False(t, w.IsAlive(e))

	e2 := w.Spawn()
	assert.Equal(t, e.Index, e2.Index, "freed slot is reused")
	assert.NotEqual(t, e.Generation, e2.Generation, "generation bumps on reuse")
	assert.False(t, w.IsAlive(e), "stale handle at old generation stays dead")
}

func TestRestoreEntityOutOfOrderClearsSkippedGapsFromFreeList(t *testing.T) {
	w := newTestWorld(t)

	// Restoring index 2 first grows the table and provisionally marks 0
	// and 1 as free gaps; restoring them afterward must take them back out
	// of freeList, since they are no longer unfilled.
	c := w.RestoreEntity(2, 0)
	a := w.RestoreEntity(0, 0)
	b := w.RestoreEntity(1, 0)

	require.True(t, w.IsAlive(a))
	require.True(t, w.IsAlive(b))
	require.True(t, w.IsAlive(c))

	spawned := w.Spawn()
	assert.NotEqual(t, a, spawned)
	assert.NotEqual(t, b, spawned)
	assert.NotEqual(t, c, spawned)
	assert.True(t, w.IsAlive(a), "spawn must not silently reclaim a restored entity's slot")
	assert.True(t, w.IsAlive(b))
	assert.True(t, w.IsAlive(c))
}

func TestInsertMigratesAndPreservesOtherColumns(t *testing.T) {
	w := newTestWorld(t)
	e := w.Spawn()
	ecs.Insert(w, e, position{X: 1, Y: 2})
	ecs.Insert(w, e, health{HP: 100})

	pos, ok := ecs.Get[position](w, e)
	require.True(t, ok)
	assert.Equal(t, position{X: 1, Y: 2}, pos)

	ecs.Remove[health](w, e)
	pos2, ok := ecs.Get[position](w, e)
	require.True(t, ok, "position survives removing an unrelated component")
	assert.Equal(t, position{X: 1, Y: 2}, pos2)
	assert.False(t, ecs.Has[health](w, e))
}

func TestInsertIsIdempotentOverwrite(t *testing.T) {
	w := newTestWorld(t)
	e := w.Spawn()
	ecs.Insert(w, e, health{HP: 100})
	ecs.Insert(w, e, health{HP: 42})

	hp, ok := ecs.Get[health](w, e)
	require.True(t, ok)
	assert.Equal(t, int32(42), hp.HP)
}

func TestStructuralOpsOnDeadEntityAreNoops(t *testing.T) {
	w := newTestWorld(t)
	e := w.Spawn()
	w.Despawn(e)

	assert.NotPanics(t, func() {
		ecs.Insert(w, e, position{X: 9, Y: 9})
		ecs.Remove[position](w, e)
		w.Despawn(e)
	})
	_, ok := ecs.Get[position](w, e)
	assert.False(t, ok)
}

func TestArchetypeIterationOrderIsCanonical(t *testing.T) {
	w := newTestWorld(t)
	a := w.Spawn()
	ecs.Insert(w, a, team{ID: 1})
	ecs.Insert(w, a, position{X: 0, Y: 0})

	b := w.Spawn()
	ecs.Insert(w, b, position{X: 0, Y: 0})
	ecs.Insert(w, b, team{ID: 2})

	var keys []string
	for _, arch := range w.Archetypes() {
		keys = append(keys, arch.Signature().Key())
	}
	for i := 1; i < len(keys); i++ {
		assert.LessOrEqual(t, keys[i-1], keys[i], "archetypes must list in sorted signature order")
	}
}

func TestRoundTripInsertRemoveRestoresEquivalentState(t *testing.T) {
	w := newTestWorld(t)
	e := w.Spawn()
	ecs.Insert(w, e, position{X: 3, Y: 4})
	before := w.IsAlive(e)
	beforeGen := e.Generation

	ecs.Insert(w, e, health{HP: 10})
	ecs.Remove[health](w, e)

	assert.Equal(t, before, w.IsAlive(e))
	assert.Equal(t, beforeGen, e.Generation)
	pos, ok := ecs.Get[position](w, e)
	require.True(t, ok)
	assert.Equal(t, position{X: 3, Y: 4}, pos)
}

func TestZeroEntityWorldQueriesAreEmpty(t *testing.T) {
	w := newTestWorld(t)
	count := 0
	ecs.Query1[position](w, func(ecs.Entity, *position) { count++ })
	assert.Zero(t, count)
}

func TestResourceGetSet(t *testing.T) {
	w := newTestWorld(t)
	_, ok := ecs.Resource[int](w)
	assert.False(t, ok)

	ecs.SetResource(w, 42)
	v, ok := ecs.Resource[int](w)
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestEventsDrainInInsertionOrder(t *testing.T) {
	w := newTestWorld(t)
	ecs.PushEvent(w, "a")
	ecs.PushEvent(w, "b")

	got := ecs.DrainEvents[string](w)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Empty(t, ecs.DrainEvents[string](w))
}
