// Package weave implements the emergent-intent layer: pattern detectors
// scan WorldMetrics for conditions worth reacting to, propose WeaveIntents,
// and an Adjudicator accepts or rejects them under a per-tick budget
// and per-key cooldowns. Accepted intents are pushed as
// WeaveIntentEvents for downstream systems (spawners, dialogue, anchors) to
// react to; the adjudicator itself never mutates the world directly.
package weave
