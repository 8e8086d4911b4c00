package weave

import "github.com/astraweave-go/astraweave/ecs"

// Run executes one tick of the weave pipeline: every detector proposes
// intents against its own forked RNG layer, the adjudicator accepts or
// rejects them in priority order, and accepted/rejected intents are pushed
// as events for downstream systems and telemetry to drain.
func Run(w *ecs.World, adj *Adjudicator, detectors []PatternDetector, metrics WorldMetrics, worldSeed uint64) []Decision {
	var candidates []WeaveIntent
	for _, d := range detectors {
		rng := NewLayerRNG(worldSeed, d.Name())
		candidates = append(candidates, d.Detect(metrics, rng)...)
	}

	decisions := adj.Adjudicate(candidates, w.Tick())
	for _, dec := range decisions {
		if dec.Accepted {
			ecs.PushEvent(w, WeaveIntentEvent{Intent: dec.Intent})
		} else {
			ecs.PushEvent(w, WeaveIntentRejectedEvent{Intent: dec.Intent, Reason: dec.Reason})
		}
	}
	return decisions
}
