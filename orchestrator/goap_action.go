package orchestrator

import "github.com/astraweave-go/astraweave/tools"

// GoapAction is one edge in the search: its Pre facts must hold before it
// fires, its Effects describe what becomes true once it does, and Step
// materializes the concrete ActionStep it contributes to the plan. Cost
// and Name feed the deterministic tie-break.
type GoapAction struct {
	Name    string
	Cost    float64
	Pre     GoapState
	Effects GoapState
	Step    tools.ActionStep
}
