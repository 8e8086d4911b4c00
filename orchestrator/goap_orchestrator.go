package orchestrator

import (
	"github.com/astraweave-go/astraweave/perception"
	"github.com/astraweave-go/astraweave/tools"
)

// GOAPOrchestrator proposes plans by backward-chaining search over a small
// world-state algebra: preconditions and effects are data.
// Unlike RuleOrchestrator it can legitimately fail to find a plan, in
// which case ProposePlan returns an empty-step PlanIntent and the arbiter
// is expected to fall further down the chain.
type GOAPOrchestrator struct {
	// EngageRange mirrors RuleOrchestrator's: the distance at which the
	// nearest enemy is considered already in range rather than needing a
	// closing move first.
	EngageRange int32
}

// NewGOAPOrchestrator returns a GOAPOrchestrator with the default engage
// range used in the worked examples.
func NewGOAPOrchestrator() *GOAPOrchestrator {
	return &GOAPOrchestrator{EngageRange: 1}
}

// ProposePlan builds a goal of "enemy_neutralized" against the nearest
// enemy and searches for the cheapest deterministic action sequence that
// reaches it. With ammo and an in-range enemy this resolves in a single
// CoverFire step; out of range it prepends a closing
// MoveTo; out of ammo the goal is unreachable and the plan is empty.
func (g *GOAPOrchestrator) ProposePlan(snapshot perception.WorldSnapshot) tools.PlanIntent {
	target, ok := nearestEnemy(snapshot)
	if !ok {
		return tools.PlanIntent{PlanID: "goap", Steps: nil}
	}

	inRange := chebyshev(snapshot.Me.Pos, target.Pos) <= g.EngageRange
	hasAmmo := snapshot.Me.Ammo > 0

	initial := GoapState{
		FactEnemyInRange:     inRange,
		FactHasAmmo:          hasAmmo,
		FactEnemyNeutralized: false,
	}
	goal := GoapState{FactEnemyNeutralized: true}

	actions := []GoapAction{
		{
			Name:    "cover_fire",
			Cost:    1,
			Pre:     GoapState{FactEnemyInRange: true, FactHasAmmo: true},
			Effects: GoapState{FactEnemyNeutralized: true},
			Step:    tools.NewCoverFire(target.ID, 2.0),
		},
		{
			Name:    "close_distance",
			Cost:    2,
			Pre:     GoapState{FactEnemyInRange: false},
			Effects: GoapState{FactEnemyInRange: true},
			Step:    moveToward(snapshot.Me.Pos, target.Pos),
		},
	}

	path, found := PlanGoap(initial, goal, actions)
	if !found {
		return tools.PlanIntent{PlanID: "goap", Steps: nil}
	}

	steps := make([]tools.ActionStep, len(path))
	for i, a := range path {
		steps[i] = a.Step
	}
	return tools.PlanIntent{PlanID: "goap", Steps: steps}
}
