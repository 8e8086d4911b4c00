package sandbox

import (
	"github.com/astraweave-go/astraweave/components"
	"github.com/astraweave-go/astraweave/tools"
)

// DownedAlly is a companion the Revive verb may target: the target must be
// adjacent (Chebyshev distance 1) to the acting agent.
type DownedAlly struct {
	ID  uint32
	Pos components.Pos
}

// Bounds is the world's navigable grid extent, inclusive on both ends.
type Bounds struct {
	MinX, MinY, MaxX, MaxY int32
}

// Contains reports whether (x, y) lies within b.
func (b Bounds) Contains(x, y int32) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// ValidationContext is the borrow-only handle the validator receives for a
// single call: physics/spatial queries, the navmesh bounds, and the
// cooldown/ammo/ally state relevant to the calling agent. It is never
// mutated by Validate.
type ValidationContext struct {
	Physics      PhysicsQuery
	Bounds       Bounds
	AgentPos     components.Pos
	Ammo         int32
	Cooldowns    components.Cooldowns
	DownedAllies []DownedAlly
}
