// Package arbiter implements the three-tier fallback state machine that
// decides, each AI_PLANNING stage, whose proposed plan an agent runs this
// tick: an in-flight LLM request, the deterministic GOAP orchestrator, or
// the behavior-tree floor. The state machine never blocks the
// tick on the LLM; async work is launched and polled, never awaited.
package arbiter
