package sandbox

import (
	"encoding/json"
	"fmt"

	"github.com/astraweave-go/astraweave/components"
	"github.com/astraweave-go/astraweave/perception"
	"github.com/astraweave-go/astraweave/tools"
)

func chebyshev1(ax, ay, bx, by int32) int32 {
	dx := ax - bx
	if dx < 0 {
		dx = -dx
	}
	dy := ay - by
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// Validate is the sole function every agent mutation passes through. It
// runs the six validation tiers in order and returns the first
// rejection encountered, or nil if step may proceed. Validate never
// panics and never mutates ctx, snapshot, or the registry.
func Validate(step tools.ActionStep, snapshot perception.WorldSnapshot, ctx ValidationContext, registry *tools.Registry) error {
	// Tier 1: schema.
	spec, ok := registry.Lookup(step.Verb)
	if !ok {
		return tools.NewError(step.Verb, tools.ReasonUnknownVerb, "verb not registered", step)
	}
	argsJSON, err := json.Marshal(step)
	if err != nil {
		return tools.NewError(step.Verb, tools.ReasonInvalidArg, "cannot encode args: "+err.Error(), step)
	}
	if err := registry.ValidateArgs(step.Verb, argsJSON); err != nil {
		return err
	}

	// Tier 2: resource.
	if spec.RequiresAmmo && ctx.Ammo <= 0 {
		return tools.NewError(step.Verb, tools.ReasonInsufficientAmmo, "no ammo remaining", step)
	}
	if spec.RequiresAdjacentDowned {
		if err := requireAdjacentDowned(step, ctx); err != nil {
			return err
		}
	}

	// Tier 3: cooldown.
	if registry.Constraints().EnforceCooldowns && spec.Cooldown {
		if key, ok := tools.CooldownKeyForVerb(step); ok {
			if ctx.Cooldowns.ReadyAt(key) > snapshot.T {
				return tools.NewError(step.Verb, tools.ReasonCooldown,
					fmt.Sprintf("%s ready at tick %d, now %d", key, ctx.Cooldowns.ReadyAt(key), snapshot.T), step)
			}
		}
	}

	// Tier 4: spatial.
	if step.Verb == tools.VerbMoveTo {
		if err := validateMoveTo(step, ctx); err != nil {
			return err
		}
	}

	// Tier 5: LOS / stance.
	if registry.Constraints().EnforceLOS && spec.RequiresLOS {
		if err := validateLineOfSight(step, snapshot, ctx); err != nil {
			return err
		}
	}
	if step.Verb == tools.VerbThrow {
		if err := validateClearArc(step, ctx); err != nil {
			return err
		}
	}

	// Tier 6: consistency.
	if step.Verb == tools.VerbCoverFire {
		if !targetExists(step.CoverFire.TargetID, snapshot) {
			return tools.NewError(step.Verb, tools.ReasonTargetMissing, "target entity no longer in snapshot", step)
		}
	}

	return nil
}

func requireAdjacentDowned(step tools.ActionStep, ctx ValidationContext) error {
	for _, ally := range ctx.DownedAllies {
		if ally.ID == step.Revive.AllyID {
			if chebyshev1(ctx.AgentPos.X, ctx.AgentPos.Y, ally.Pos.X, ally.Pos.Y) <= 1 {
				return nil
			}
			return tools.NewError(step.Verb, tools.ReasonTargetMissing, "downed ally is not adjacent", step)
		}
	}
	return tools.NewError(step.Verb, tools.ReasonTargetMissing, "no such downed ally", step)
}

func validateMoveTo(step tools.ActionStep, ctx ValidationContext) error {
	x, y := step.MoveTo.X, step.MoveTo.Y
	if !ctx.Bounds.Contains(x, y) {
		return tools.NewError(step.Verb, tools.ReasonOutOfBounds, "target cell outside navigable bounds", step)
	}
	if ctx.Physics == nil {
		return tools.NewError(step.Verb, tools.ReasonPhysicsUnavailable, "no physics world bound to validation context", step)
	}
	if _, occupied := ctx.Physics.BodyAtCell(x, y); occupied {
		return tools.NewError(step.Verb, tools.ReasonBlockedByCollider, "static collider occupies target cell", step)
	}
	return nil
}

func validateLineOfSight(step tools.ActionStep, snapshot perception.WorldSnapshot, ctx ValidationContext) error {
	if ctx.Physics == nil {
		return tools.NewError(step.Verb, tools.ReasonPhysicsUnavailable, "no physics world bound to validation context", step)
	}
	target, ok := findEnemy(step.CoverFire.TargetID, snapshot)
	if !ok {
		return tools.NewError(step.Verb, tools.ReasonTargetMissing, "target entity no longer in snapshot", step)
	}
	to := components.Pos{X: target.Pos.X, Y: target.Pos.Y}
	if _, blocked := ctx.Physics.Raycast(ctx.AgentPos, to); blocked {
		return tools.NewError(step.Verb, tools.ReasonNoLineOfSight, "line of sight to target is blocked", step)
	}
	return nil
}

func validateClearArc(step tools.ActionStep, ctx ValidationContext) error {
	if ctx.Physics == nil {
		return tools.NewError(step.Verb, tools.ReasonPhysicsUnavailable, "no physics world bound to validation context", step)
	}
	to := components.Pos{X: step.Throw.X, Y: step.Throw.Y}
	if _, blocked := ctx.Physics.Raycast(ctx.AgentPos, to); blocked {
		return tools.NewError(step.Verb, tools.ReasonNoLineOfSight, "no clear throwing arc to target cell", step)
	}
	return nil
}

func targetExists(id uint32, snapshot perception.WorldSnapshot) bool {
	_, ok := findEnemy(id, snapshot)
	return ok
}

func findEnemy(id uint32, snapshot perception.WorldSnapshot) (perception.EnemyView, bool) {
	for _, e := range snapshot.Enemies {
		if e.ID == id {
			return e, true
		}
	}
	return perception.EnemyView{}, false
}
