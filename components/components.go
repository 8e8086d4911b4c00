package components

import "github.com/astraweave-go/astraweave/tools"

// Pos is an entity's grid-cell position. Positions are always (i32, i32)
// cells, never floating-point world coordinates, matching the snapshot
// schema perception builds from them.
type Pos struct {
	X, Y int32
}

// Health tracks current and maximum hit points.
type Health struct {
	HP, Max int32
}

// Team identifies faction membership for line-of-sight and targeting
// decisions. Zero is a valid team (e.g. neutral/wildlife).
type Team struct {
	ID uint8
}

// Ammo is the current ammunition count gating Throw and CoverFire.
type Ammo struct {
	Count int32
}

// Morale is a companion's morale stat, surfaced in WorldSnapshot.Self but
// otherwise opaque to the core (policy over its use lives in gameplay
// systems, not here).
type Morale struct {
	Value float32
}

// Cooldowns maps a tool's CooldownKey to the world tick at which it next
// becomes usable. A missing entry means "no cooldown pending".
type Cooldowns struct {
	Deadlines map[tools.CooldownKey]uint64
}

// ReadyAt returns the tick at which key becomes usable again; zero if no
// cooldown is pending.
func (c Cooldowns) ReadyAt(key tools.CooldownKey) uint64 {
	if c.Deadlines == nil {
		return 0
	}
	return c.Deadlines[key]
}

// DesiredPos is the command-buffer-applied effect of an accepted MoveTo:
// the position the agent intends to move toward, consumed by the physics
// stage's movement system (out of core scope; the core only sets it).
type DesiredPos struct {
	X, Y int32
}

// Downed marks an entity as incapacitated and eligible for Revive. Absence
// of this component means the entity is upright.
type Downed struct{}

// AiAgent marks an entity as planner-driven. Tier is a free-form label for
// the orchestrator tier that owns it; package arbiter does not read or
// write it.
type AiAgent struct {
	Tier string
}

// Stance is an entity's current cover/stance state, consulted by CoverFire's
// line-of-sight tier.
type Stance uint8

const (
	StanceStanding Stance = iota
	StanceCrouching
	StanceInCover
)

// StanceComponent wraps Stance for storage; named distinctly from the Stance
// type itself so ecs.Register[StanceComponent] reads unambiguously at call
// sites next to Pos, Health, etc.
type StanceComponent struct {
	Value Stance
}

// PlayerControlled marks the single entity perception treats as "the
// player" when building PlayerState. At most one entity should carry it;
// BuildSnapshot uses the first one found in canonical archetype order.
type PlayerControlled struct{}

// Orders is the player's current squad-order text, surfaced verbatim in
// WorldSnapshot.Player.Orders.
type Orders struct {
	Text string
}
