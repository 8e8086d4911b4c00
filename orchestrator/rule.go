package orchestrator

import (
	"github.com/astraweave-go/astraweave/perception"
	"github.com/astraweave-go/astraweave/tools"
)

// RuleOrchestrator is a hand-authored decision tree. It always returns a
// plan — Wait if nothing more specific applies — so it can serve as the
// bottom of a fallback chain.
type RuleOrchestrator struct {
	// EngageRange is the Chebyshev distance at which the nearest enemy is
	// considered close enough to open fire on rather than close with.
	EngageRange int32
}

// NewRuleOrchestrator returns a RuleOrchestrator with the default engage
// range used throughout the worked examples.
func NewRuleOrchestrator() *RuleOrchestrator {
	return &RuleOrchestrator{EngageRange: 6}
}

// ProposePlan walks a small, fixed decision tree: with an enemy visible and
// no ammo, a MoveTo the agent's own cell (staying put); otherwise engage
// the nearest enemy within EngageRange, otherwise step one cell toward it,
// otherwise Wait. Downed allies are not considered, so no Revive step is
// ever proposed.
func (r *RuleOrchestrator) ProposePlan(snapshot perception.WorldSnapshot) tools.PlanIntent {
	nearest, hasEnemy := nearestEnemy(snapshot)

	switch {
	case snapshot.Me.Ammo <= 0 && hasEnemy:
		return onePlan(tools.NewMoveTo(snapshot.Me.Pos.X, snapshot.Me.Pos.Y))
	case hasEnemy && chebyshev(snapshot.Me.Pos, nearest.Pos) <= r.EngageRange:
		return onePlan(tools.NewCoverFire(nearest.ID, 2.0))
	case hasEnemy:
		step := moveToward(snapshot.Me.Pos, nearest.Pos)
		return onePlan(step)
	default:
		return onePlan(tools.NewWait(1.0))
	}
}

func onePlan(step tools.ActionStep) tools.PlanIntent {
	return tools.PlanIntent{PlanID: "rule", Steps: []tools.ActionStep{step}}
}

func nearestEnemy(snapshot perception.WorldSnapshot) (perception.EnemyView, bool) {
	var best perception.EnemyView
	found := false
	bestDist := int32(0)
	for _, e := range snapshot.Enemies {
		d := chebyshev(snapshot.Me.Pos, e.Pos)
		if !found || d < bestDist || (d == bestDist && e.ID < best.ID) {
			best, bestDist, found = e, d, true
		}
	}
	return best, found
}

func chebyshev(a, b perception.Pos) int32 {
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

func moveToward(from, to perception.Pos) tools.ActionStep {
	x, y := from.X, from.Y
	switch {
	case from.X < to.X:
		x++
	case from.X > to.X:
		x--
	}
	switch {
	case from.Y < to.Y:
		y++
	case from.Y > to.Y:
		y--
	}
	return tools.NewMoveTo(x, y)
}
