// Package sandbox implements the validator: the single function every
// agent mutation — scripted, planner-proposed, or LLM-proposed — passes
// through before it can touch the world. Validation is layered
// (schema, resource, cooldown, spatial, LOS/stance, consistency) and never
// panics; every failure returns a *tools.Error from the closed taxonomy.
package sandbox
