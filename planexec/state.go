package planexec

import "github.com/astraweave-go/astraweave/tools"

// ActivePlan is the component an agent carries while a multi-step plan is
// still executing. Cursor marks the first not-yet-attempted step; a
// rejection leaves Cursor pointing at the step that failed, so the next
// tick's orchestrator can decide whether to replan from there or abandon it.
type ActivePlan struct {
	Plan   tools.PlanIntent
	Cursor int
}

// Done reports whether every step of the plan has been attempted.
func (p ActivePlan) Done() bool {
	return p.Cursor >= len(p.Plan.Steps)
}
