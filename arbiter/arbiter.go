package arbiter

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/astraweave-go/astraweave/llmclient"
	"github.com/astraweave-go/astraweave/orchestrator"
	"github.com/astraweave-go/astraweave/perception"
	"github.com/astraweave-go/astraweave/tools"
)

type llmResult struct {
	plan      tools.PlanIntent
	err       error
	elapsedMs int64
}

type pendingLLM struct {
	resultCh chan llmResult
	cancel   context.CancelFunc
}

// Arbiter runs the three-tier fallback state machine for a single agent.
// Goap must always be able to propose a plan (an empty PlanIntent counts
// as "fails to produce" and trips FallbackBT); LLM may be nil, in which
// case the arbiter never leaves ExecutingGoap/FallbackBT.
type Arbiter struct {
	Goap orchestrator.Planner
	LLM  llmclient.Client

	// LLMBudgetMs is the budget passed to LLM.Plan and also the hard
	// deadline the arbiter itself imposes via context cancellation.
	LLMBudgetMs int64
	// LLMTriggerEveryTicks is how many consecutive ExecutingGoap ticks
	// pass before the arbiter launches a new async LLM request.
	LLMTriggerEveryTicks uint64
	// CooldownTicks is how long the arbiter stays in Cooldown after an
	// LLM timeout or parse failure before retrying.
	CooldownTicks uint64

	state         State
	cooldownUntil uint64
	ticksInGoap   uint64
	pending       *pendingLLM
	metrics       Metrics
}

// New returns an Arbiter starting in ExecutingGoap.
func New(goap orchestrator.Planner, llm llmclient.Client) *Arbiter {
	return &Arbiter{
		Goap:                 goap,
		LLM:                  llm,
		LLMBudgetMs:          50,
		LLMTriggerEveryTicks: 10,
		CooldownTicks:        20,
		state:                StateExecutingGoap,
	}
}

// State returns the arbiter's current state.
func (a *Arbiter) State() State { return a.state }

// Metrics returns a snapshot of the arbiter's counters.
func (a *Arbiter) Metrics() Metrics { return a.metrics }

// Tick advances the state machine by one tick and returns the plan the
// caller should hand to the plan executor this tick. It never blocks on
// the LLM: an in-flight request that hasn't resolved yet is polled
// non-blockingly and GOAP covers the tick in the meantime, without
// disturbing the WaitingForLlm state the pending request is tracked under.
func (a *Arbiter) Tick(ctx context.Context, snapshot perception.WorldSnapshot, tick uint64) tools.PlanIntent {
	if a.state == StateCooldown && tick >= a.cooldownUntil {
		a.state = StateExecutingGoap
	}

	if a.state == StateWaitingForLlm {
		if plan, ok := a.pollLlm(tick); ok {
			return plan
		}
		plan, _ := a.goapPlan(snapshot)
		return plan
	}

	if a.state == StateCooldown {
		plan, _ := a.goapPlan(snapshot)
		return plan
	}

	if a.state == StateExecutingLlm {
		a.state = StateExecutingGoap
	}

	plan, produced := a.goapPlan(snapshot)
	if produced {
		a.state = StateExecutingGoap
	} else {
		a.state = StateFallbackBT
	}

	if a.LLM != nil && a.pending == nil && a.state == StateExecutingGoap {
		a.ticksInGoap++
		if a.ticksInGoap >= a.LLMTriggerEveryTicks {
			a.ticksInGoap = 0
			a.launchLlm(ctx, snapshot)
			a.state = StateWaitingForLlm
		}
	}
	return plan
}

// goapPlan proposes a plan via Goap and records goap_steps/fallbacks. It
// never mutates a.state — callers decide what the result means for the
// state machine.
func (a *Arbiter) goapPlan(snapshot perception.WorldSnapshot) (tools.PlanIntent, bool) {
	plan := a.Goap.ProposePlan(snapshot)
	if len(plan.Steps) == 0 {
		a.metrics.Fallbacks++
		return tools.PlanIntent{PlanID: "fallback-bt", Steps: []tools.ActionStep{tools.NewWait(1.0)}}, false
	}
	a.metrics.GoapSteps += int64(len(plan.Steps))
	return plan, true
}

func (a *Arbiter) launchLlm(ctx context.Context, snapshot perception.WorldSnapshot) {
	budgetCtx, cancel := llmclient.WithBudget(ctx, a.LLMBudgetMs)
	ch := make(chan llmResult, 1)
	a.pending = &pendingLLM{resultCh: ch, cancel: cancel}
	a.metrics.LlmRequests++

	var g errgroup.Group
	g.Go(func() error {
		start := time.Now()
		plan, err := a.LLM.Plan(budgetCtx, snapshot, a.LLMBudgetMs)
		ch <- llmResult{plan: plan, err: err, elapsedMs: time.Since(start).Milliseconds()}
		return nil
	})
}

// pollLlm checks for a resolved LLM result without blocking. It returns
// (plan, true) on success, transitioning to ExecutingLlm, or (zero, false)
// if nothing has arrived yet or the request failed/timed out (in which
// case the state moves to Cooldown).
func (a *Arbiter) pollLlm(tick uint64) (tools.PlanIntent, bool) {
	select {
	case res := <-a.pending.resultCh:
		a.pending.cancel()
		a.pending = nil
		a.metrics.recordLatency(res.elapsedMs)
		if res.err != nil || len(res.plan.Steps) == 0 {
			a.metrics.LlmTimeouts++
			a.cooldownUntil = tick + a.CooldownTicks
			a.state = StateCooldown
			return tools.PlanIntent{}, false
		}
		a.metrics.LlmSuccesses++
		a.state = StateExecutingLlm
		return res.plan, true
	default:
		return tools.PlanIntent{}, false
	}
}
