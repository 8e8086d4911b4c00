package tools

import "fmt"

// Reason is the closed set of ways a tool call can be rejected by the
// sandbox validator. The set never grows at runtime; adding a
// rejection reason is a code change, not configuration.
type Reason string

const (
	ReasonCooldown           Reason = "cooldown"
	ReasonInsufficientAmmo   Reason = "insufficient_ammo"
	ReasonOutOfBounds        Reason = "out_of_bounds"
	ReasonBlockedByCollider  Reason = "blocked_by_collider"
	ReasonNoLineOfSight      Reason = "no_line_of_sight"
	ReasonTargetMissing      Reason = "target_missing"
	ReasonUnknownVerb        Reason = "unknown_verb"
	ReasonInvalidArg         Reason = "invalid_arg"
	ReasonPhysicsUnavailable Reason = "physics_unavailable"
)

// Error is the typed rejection the validator returns for every failed tool
// call. It never panics in its place: Error is always a normal return
// value, surfaced to gameplay inside a planexec.ToolBlocked event, which
// carries the Error itself alongside the agent and the rejected step.
type Error struct {
	Tool    Verb
	Reason  Reason
	Message string
	Args    any
}

func (e *Error) Error() string {
	return fmt.Sprintf("tools: %s blocked: %s (%s)", e.Tool, e.Reason, e.Message)
}

// NewError constructs a tool Error for verb v with reason r and a
// human-readable message, carrying args for diagnostic/telemetry use.
func NewError(v Verb, r Reason, message string, args any) *Error {
	return &Error{Tool: v, Reason: r, Message: message, Args: args}
}
