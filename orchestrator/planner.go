package orchestrator

import (
	"github.com/astraweave-go/astraweave/perception"
	"github.com/astraweave-go/astraweave/tools"
)

// Planner is the single capability every synchronous orchestrator
// implements: turn a snapshot into a proposed plan. Implementations must
// not mutate snapshot and must never touch the world directly — the
// returned PlanIntent is a proposal the sandbox validator still has to
// accept step by step.
type Planner interface {
	ProposePlan(snapshot perception.WorldSnapshot) tools.PlanIntent
}

// PlannerFunc adapts a plain function to the Planner interface.
type PlannerFunc func(snapshot perception.WorldSnapshot) tools.PlanIntent

// ProposePlan calls f.
func (f PlannerFunc) ProposePlan(snapshot perception.WorldSnapshot) tools.PlanIntent {
	return f(snapshot)
}
