package weave

import "sort"

// PatternDetector inspects WorldMetrics and proposes zero or more
// WeaveIntents. Implementations are pure functions of (metrics, rng); the
// rng is a per-layer stream so two detectors never perturb each other's
// determinism.
type PatternDetector interface {
	Name() string
	Detect(metrics WorldMetrics, rng *LayerRNG) []WeaveIntent
}

// LowHealthClusterDetector fires when enough entities are critically
// wounded at once, proposing an aid-event intent.
type LowHealthClusterDetector struct {
	Threshold      float32
	MinClusterSize int
}

func (d LowHealthClusterDetector) Name() string { return "low_health_cluster" }

func (d LowHealthClusterDetector) Detect(m WorldMetrics, rng *LayerRNG) []WeaveIntent {
	if m.CriticalHealthCount < d.MinClusterSize || m.AvgHealth > d.Threshold {
		return nil
	}
	severity := 1 - clamp01(m.AvgHealth/d.Threshold)
	intent := NewIntent("aid_event").
		WithKind("aid_event").
		WithPriority(0.5 + 0.5*severity).
		WithCost(5)
	_ = rng // no randomness needed for this layer's single deterministic intent
	return []WeaveIntent{intent}
}

// ResourceScarcityDetector fires a supply_drop intent per scarce resource
// kind, in deterministic (sorted) key order.
type ResourceScarcityDetector struct {
	Threshold float32
}

func (d ResourceScarcityDetector) Name() string { return "resource_scarcity" }

func (d ResourceScarcityDetector) Detect(m WorldMetrics, rng *LayerRNG) []WeaveIntent {
	var kinds []string
	for kind, level := range m.ResourceScarcity {
		if level <= d.Threshold {
			kinds = append(kinds, kind)
		}
	}
	sort.Strings(kinds)

	intents := make([]WeaveIntent, 0, len(kinds))
	for _, kind := range kinds {
		level := m.ResourceScarcity[kind]
		priority := 0.4 + 0.4*clamp01(1-level/d.Threshold)
		intents = append(intents, NewIntent("supply_drop_"+kind).
			WithKind("supply_drop").
			WithPriority(priority).
			WithCost(8).
			WithPayload("resource", kind))
	}
	_ = rng
	return intents
}

// FactionConflictDetector fires a mediator intent per faction pair whose
// tension exceeds Threshold, in deterministic key order.
type FactionConflictDetector struct {
	Threshold float32
}

func (d FactionConflictDetector) Name() string { return "faction_conflict" }

func (d FactionConflictDetector) Detect(m WorldMetrics, rng *LayerRNG) []WeaveIntent {
	var pairs []string
	for pair, tension := range m.FactionTensions {
		if tension >= d.Threshold {
			pairs = append(pairs, pair)
		}
	}
	sort.Strings(pairs)

	intents := make([]WeaveIntent, 0, len(pairs))
	for _, pair := range pairs {
		tension := m.FactionTensions[pair]
		intents = append(intents, NewIntent("mediator_"+pair).
			WithCooldownKey("mediator").
			WithKind("mediator").
			WithPriority(tension).
			WithCost(12).
			WithPayload("pair", pair))
	}
	_ = rng
	return intents
}

// CombatIntensityDetector fires an escalation intent when enough damage
// events land within the configured time window.
type CombatIntensityDetector struct {
	EventsThreshold int
	TimeWindowSec   float32
}

func (d CombatIntensityDetector) Name() string { return "combat_intensity" }

func (d CombatIntensityDetector) Detect(m WorldMetrics, rng *LayerRNG) []WeaveIntent {
	if m.RecentDamageEvents < d.EventsThreshold || m.TimeSinceEventSec > d.TimeWindowSec {
		return nil
	}
	ratio := float32(m.RecentDamageEvents) / float32(d.EventsThreshold)
	jitter := rng.Float01() * 0.05 // tie-break spread between otherwise-equal ticks
	return []WeaveIntent{
		NewIntent("combat_escalation").
			WithKind("combat_escalation").
			WithPriority(clamp01(0.6+0.2*ratio) + jitter).
			WithCost(10),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
