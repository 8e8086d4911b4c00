package planexec

import (
	"github.com/astraweave-go/astraweave/components"
	"github.com/astraweave-go/astraweave/ecs"
	"github.com/astraweave-go/astraweave/perception"
	"github.com/astraweave-go/astraweave/sandbox"
	"github.com/astraweave-go/astraweave/tools"
)

// ToolBlocked is pushed to the world's event channel whenever a step fails
// validation. Consumers (telemetry, weave pattern detectors) drain it like
// any other ecs event.
type ToolBlocked struct {
	Agent ecs.Entity
	Step  tools.ActionStep
	Err   *tools.Error
}

// StepApplied is pushed for every step that passes validation and has its
// effects applied.
type StepApplied struct {
	Agent ecs.Entity
	Step  tools.ActionStep
}

// DamageEvent is pushed when CoverFire lands against a live target.
type DamageEvent struct {
	Agent  ecs.Entity
	Target uint32
}

// Result reports how far Execute advanced through a plan's step list.
type Result struct {
	PlanID    string
	Cursor    int
	Completed bool
	Blocked   *tools.Error
}

// DefaultCooldownTicks are the fallback cooldown durations (in ticks) applied
// when a verb's cooldown fires and no caller override is supplied.
var DefaultCooldownTicks = map[tools.CooldownKey]uint64{
	tools.CooldownThrowSmoke:   30,
	tools.CooldownThrowGrenade: 45,
	tools.CooldownCoverFire:    20,
	tools.CooldownRevive:       60,
	tools.CooldownScan:         10,
}

// Executor steps a single agent's plan through the sandbox validator,
// applying accepted steps to the world via a command buffer and halting at
// the first rejection. It holds no per-agent state between calls; the
// caller is responsible for persisting Result.Cursor (typically in an
// ActivePlan component) and resuming from it on the next tick.
type Executor struct {
	Registry      *tools.Registry
	CooldownTicks map[tools.CooldownKey]uint64
}

// NewExecutor builds an Executor with the default cooldown table.
func NewExecutor(registry *tools.Registry) *Executor {
	return &Executor{Registry: registry, CooldownTicks: DefaultCooldownTicks}
}

// Execute validates and applies plan.Steps[startCursor:] in order against w,
// queuing structural effects onto cb rather than mutating w directly. It
// stops at the first step that fails validation (emitting ToolBlocked) or
// after the last step succeeds (Completed=true).
func (ex *Executor) Execute(
	w *ecs.World,
	cb *ecs.CommandBuffer,
	agent ecs.Entity,
	plan tools.PlanIntent,
	startCursor int,
	snapshot perception.WorldSnapshot,
	ctx sandbox.ValidationContext,
) Result {
	cursor := startCursor
	for cursor < len(plan.Steps) {
		step := plan.Steps[cursor]
		if err := sandbox.Validate(step, snapshot, ctx, ex.Registry); err != nil {
			toolErr, _ := err.(*tools.Error)
			ecs.PushEvent(w, ToolBlocked{Agent: agent, Step: step, Err: toolErr})
			return Result{PlanID: plan.PlanID, Cursor: cursor, Blocked: toolErr}
		}
		ex.apply(w, cb, agent, step, snapshot.T)
		ecs.PushEvent(w, StepApplied{Agent: agent, Step: step})
		cursor++
	}
	return Result{PlanID: plan.PlanID, Cursor: cursor, Completed: true}
}

func (ex *Executor) apply(w *ecs.World, cb *ecs.CommandBuffer, agent ecs.Entity, step tools.ActionStep, tick uint64) {
	switch step.Verb {
	case tools.VerbMoveTo:
		ecs.InsertDeferred(cb, agent, components.DesiredPos{X: step.MoveTo.X, Y: step.MoveTo.Y})
	case tools.VerbThrow:
		ex.consumeAmmo(w, cb, agent, 1)
		ex.startCooldown(w, cb, agent, step, tick)
	case tools.VerbCoverFire:
		ex.consumeAmmo(w, cb, agent, 1)
		ex.startCooldown(w, cb, agent, step, tick)
		ecs.PushEvent(w, DamageEvent{Agent: agent, Target: step.CoverFire.TargetID})
	case tools.VerbRevive:
		ex.startCooldown(w, cb, agent, step, tick)
	case tools.VerbScan:
		ex.startCooldown(w, cb, agent, step, tick)
	case tools.VerbWait:
		// no world effect.
	}
}

func (ex *Executor) consumeAmmo(w *ecs.World, cb *ecs.CommandBuffer, agent ecs.Entity, n int32) {
	ammo, ok := ecs.Get[components.Ammo](w, agent)
	if !ok {
		return
	}
	next := ammo.Count - n
	if next < 0 {
		next = 0
	}
	ecs.InsertDeferred(cb, agent, components.Ammo{Count: next})
}

func (ex *Executor) startCooldown(w *ecs.World, cb *ecs.CommandBuffer, agent ecs.Entity, step tools.ActionStep, tick uint64) {
	key, ok := tools.CooldownKeyForVerb(step)
	if !ok {
		return
	}
	duration, ok := ex.CooldownTicks[key]
	if !ok {
		return
	}
	cd, _ := ecs.Get[components.Cooldowns](w, agent)
	deadlines := make(map[tools.CooldownKey]uint64, len(cd.Deadlines)+1)
	for k, v := range cd.Deadlines {
		deadlines[k] = v
	}
	deadlines[key] = tick + duration
	ecs.InsertDeferred(cb, agent, components.Cooldowns{Deadlines: deadlines})
}
