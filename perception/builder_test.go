package perception_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astraweave-go/astraweave/components"
	"github.com/astraweave-go/astraweave/ecs"
	"github.com/astraweave-go/astraweave/perception"
	"github.com/astraweave-go/astraweave/tools"
)

func newWorld(t *testing.T) *ecs.World {
	t.Helper()
	tr := ecs.NewTypeRegistry()
	ecs.Register[components.Pos](tr)
	ecs.Register[components.Health](tr)
	ecs.Register[components.Team](tr)
	ecs.Register[components.Ammo](tr)
	ecs.Register[components.Morale](tr)
	ecs.Register[components.Cooldowns](tr)
	ecs.Register[components.PlayerControlled](tr)
	ecs.Register[components.Orders](tr)
	ecs.Register[components.StanceComponent](tr)
	return ecs.NewWorld(tr)
}

func TestBuildSnapshotIsPureAndDeterministic(t *testing.T) {
	w := newWorld(t)

	player := w.Spawn()
	ecs.Insert(w, player, components.PlayerControlled{})
	ecs.Insert(w, player, components.Pos{X: 5, Y: 5})
	ecs.Insert(w, player, components.Health{HP: 50, Max: 100})
	ecs.Insert(w, player, components.Orders{Text: "hold"})
	ecs.Insert(w, player, components.StanceComponent{})

	companion := w.Spawn()
	ecs.Insert(w, companion, components.Pos{X: 3, Y: 3})
	ecs.Insert(w, companion, components.Team{ID: 1})
	ecs.Insert(w, companion, components.Ammo{Count: 20})
	ecs.Insert(w, companion, components.Morale{Value: 0.8})
	ecs.Insert(w, companion, components.Cooldowns{Deadlines: map[tools.CooldownKey]uint64{}})

	far := w.Spawn()
	ecs.Insert(w, far, components.Pos{X: 100, Y: 100})
	ecs.Insert(w, far, components.Health{HP: 30, Max: 30})
	ecs.Insert(w, far, components.Team{ID: 2})

	near := w.Spawn()
	ecs.Insert(w, near, components.Pos{X: 12, Y: 10})
	ecs.Insert(w, near, components.Health{HP: 40, Max: 40})
	ecs.Insert(w, near, components.Team{ID: 2})

	cfg := perception.DefaultConfig()
	snapA := perception.BuildSnapshot(w, companion, 1, cfg)
	snapB := perception.BuildSnapshot(w, companion, 1, cfg)

	assert.Equal(t, snapA, snapB, "snapshot is a pure function of (world, agent, tick)")
	require.Len(t, snapA.Enemies, 1, "far entity outside sensor range is redacted")
	assert.Equal(t, near.Index, snapA.Enemies[0].ID)
	assert.Equal(t, int32(50), snapA.Player.HP)
	assert.Equal(t, "hold", snapA.Player.Orders)
	assert.Equal(t, int32(20), snapA.Me.Ammo)
}

func TestBuildSnapshotMasksPlayerHPWhenConfigured(t *testing.T) {
	w := newWorld(t)
	player := w.Spawn()
	ecs.Insert(w, player, components.PlayerControlled{})
	ecs.Insert(w, player, components.Pos{})
	ecs.Insert(w, player, components.Health{HP: 47, Max: 100})
	ecs.Insert(w, player, components.Orders{})
	ecs.Insert(w, player, components.StanceComponent{})

	companion := w.Spawn()
	ecs.Insert(w, companion, components.Pos{})
	ecs.Insert(w, companion, components.Team{})

	cfg := perception.Config{SensorRange: 5, MaskPlayerHP: true}
	snap := perception.BuildSnapshot(w, companion, 0, cfg)
	assert.Equal(t, int32(40), snap.Player.HP)
}

func TestBuildSnapshotEnemiesAreStableSortedByID(t *testing.T) {
	w := newWorld(t)
	companion := w.Spawn()
	ecs.Insert(w, companion, components.Pos{})
	ecs.Insert(w, companion, components.Team{})

	var last ecs.Entity
	for i := 0; i < 5; i++ {
		e := w.Spawn()
		ecs.Insert(w, e, components.Pos{X: int32(i), Y: 0})
		ecs.Insert(w, e, components.Health{HP: 10})
		ecs.Insert(w, e, components.Team{ID: 9})
		last = e
	}
	_ = last

	snap := perception.BuildSnapshot(w, companion, 0, perception.DefaultConfig())
	for i := 1; i < len(snap.Enemies); i++ {
		assert.Less(t, snap.Enemies[i-1].ID, snap.Enemies[i].ID)
	}
}
