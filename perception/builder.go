package perception

import (
	"sort"

	"github.com/astraweave-go/astraweave/components"
	"github.com/astraweave-go/astraweave/ecs"
	"github.com/astraweave-go/astraweave/tools"
)

// Config tunes what BuildSnapshot redacts. Sensory range gates which
// enemies are perceivable at all (BuildSnapshot does not populate POIs or
// obstacles); MaskPlayerHP coarsens the
// player's reported HP into buckets of ten, matching the "player stats may
// be masked per policy" clause without inventing a richer
// masking policy the spec doesn't ask for.
type Config struct {
	SensorRange  int32
	MaskPlayerHP bool
}

// DefaultConfig enforces no masking and a generous sensor range, suitable
// for tests and the demo.
func DefaultConfig() Config {
	return Config{SensorRange: 20}
}

// objectiveResource is the world resource carrying the current level
// objective text, if any. A world with no objective set simply never calls
// ecs.SetResource for this type.
type objectiveResource struct {
	Text string
}

// SetObjective installs the world's current objective text.
func SetObjective(w *ecs.World, text string) {
	ecs.SetResource(w, objectiveResource{Text: text})
}

func chebyshev(a, b components.Pos) int32 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

func copyCooldowns(c components.Cooldowns) map[tools.CooldownKey]uint64 {
	if len(c.Deadlines) == 0 {
		return nil
	}
	out := make(map[tools.CooldownKey]uint64, len(c.Deadlines))
	for k, v := range c.Deadlines {
		out[k] = v
	}
	return out
}

// BuildSnapshot is a pure function of (world, agent, tick): it reads
// component and resource state and returns a WorldSnapshot, never writing
// to the world. Enemies outside cfg.SensorRange of the agent are omitted
// entirely (redaction happens here, not at the planner); the remaining
// list is stable-sorted by entity index so that two calls against the same
// world state produce byte-identical snapshots.
func BuildSnapshot(w *ecs.World, agent ecs.Entity, tick uint64, cfg Config) WorldSnapshot {
	snap := WorldSnapshot{T: tick}

	meGamePos, _ := ecs.Get[components.Pos](w, agent)
	meAmmo, _ := ecs.Get[components.Ammo](w, agent)
	meMorale, _ := ecs.Get[components.Morale](w, agent)
	meCooldowns, _ := ecs.Get[components.Cooldowns](w, agent)
	meTeam, _ := ecs.Get[components.Team](w, agent)

	snap.Me = SelfState{
		Ammo:      meAmmo.Count,
		Cooldowns: copyCooldowns(meCooldowns),
		Morale:    meMorale.Value,
		Pos:       Pos{X: meGamePos.X, Y: meGamePos.Y},
	}

	var playerEntity ecs.Entity
	havePlayer := false
	ecs.Query1(w, func(e ecs.Entity, _ *components.PlayerControlled) {
		if !havePlayer {
			playerEntity = e
			havePlayer = true
		}
	})
	if havePlayer {
		hp, _ := ecs.Get[components.Health](w, playerEntity)
		pos, _ := ecs.Get[components.Pos](w, playerEntity)
		stance, _ := ecs.Get[components.StanceComponent](w, playerEntity)
		orders, _ := ecs.Get[components.Orders](w, playerEntity)
		hpValue := hp.HP
		if cfg.MaskPlayerHP {
			hpValue = (hpValue / 10) * 10
		}
		snap.Player = PlayerState{
			HP:     hpValue,
			Pos:    Pos{X: pos.X, Y: pos.Y},
			Stance: uint8(stance.Value),
			Orders: orders.Text,
		}
	}

	ecs.Query3(w, func(e ecs.Entity, pos *components.Pos, hp *components.Health, team *components.Team) {
		if e == agent || (havePlayer && e == playerEntity) {
			return
		}
		if team.ID == meTeam.ID {
			return
		}
		enemyPos := components.Pos{X: pos.X, Y: pos.Y}
		mePos := components.Pos{X: meGamePos.X, Y: meGamePos.Y}
		if chebyshev(enemyPos, mePos) > cfg.SensorRange {
			return
		}
		stance, hasStance := ecs.Get[components.StanceComponent](w, e)
		inCover := hasStance && stance.Value == components.StanceInCover
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:       e.Index,
			Pos:      Pos{X: pos.X, Y: pos.Y},
			HP:       hp.HP,
			Cover:    inCover,
			LastSeen: tick,
		})
	})
	sort.Slice(snap.Enemies, func(i, j int) bool { return snap.Enemies[i].ID < snap.Enemies[j].ID })

	if obj, ok := ecs.Resource[objectiveResource](w); ok {
		snap.Objective = obj.Text
		snap.HasObjective = true
	}

	return snap
}
