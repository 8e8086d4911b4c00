package weave_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astraweave-go/astraweave/weave"
)

func TestLowHealthClusterDetectorFiresBelowThreshold(t *testing.T) {
	d := weave.LowHealthClusterDetector{Threshold: 0.25, MinClusterSize: 3}
	rng := weave.NewLayerRNG(1, d.Name())

	intents := d.Detect(weave.WorldMetrics{AvgHealth: 0.1, CriticalHealthCount: 4}, rng)
	require.Len(t, intents, 1)
	assert.Equal(t, "aid_event", intents[0].ID)
	assert.Greater(t, intents[0].Priority, float32(0.5))
}

func TestLowHealthClusterDetectorSilentAboveThreshold(t *testing.T) {
	d := weave.LowHealthClusterDetector{Threshold: 0.25, MinClusterSize: 3}
	rng := weave.NewLayerRNG(1, d.Name())

	intents := d.Detect(weave.WorldMetrics{AvgHealth: 0.9, CriticalHealthCount: 0}, rng)
	assert.Empty(t, intents)
}

func TestResourceScarcityDetectorOrdersByKind(t *testing.T) {
	d := weave.ResourceScarcityDetector{Threshold: 0.5}
	rng := weave.NewLayerRNG(1, d.Name())

	intents := d.Detect(weave.WorldMetrics{
		ResourceScarcity: map[string]float32{"water": 0.2, "food": 0.1, "fuel": 0.9},
	}, rng)
	require.Len(t, intents, 2)
	assert.Equal(t, "supply_drop_food", intents[0].ID)
	assert.Equal(t, "supply_drop_water", intents[1].ID)
}

func TestFactionConflictDetectorFiresAboveThreshold(t *testing.T) {
	d := weave.FactionConflictDetector{Threshold: 0.6}
	rng := weave.NewLayerRNG(1, d.Name())

	intents := d.Detect(weave.WorldMetrics{
		FactionTensions: map[string]float32{"red_vs_blue": 0.8, "red_vs_green": 0.1},
	}, rng)
	require.Len(t, intents, 1)
	assert.Equal(t, "mediator_red_vs_blue", intents[0].ID)
	assert.Equal(t, "mediator", intents[0].CooldownKey)
}

func TestCombatIntensityDetectorRequiresBothEventsAndRecency(t *testing.T) {
	d := weave.CombatIntensityDetector{EventsThreshold: 10, TimeWindowSec: 5.0}
	rng := weave.NewLayerRNG(1, d.Name())

	stale := d.Detect(weave.WorldMetrics{RecentDamageEvents: 12, TimeSinceEventSec: 30}, rng)
	assert.Empty(t, stale)

	fresh := d.Detect(weave.WorldMetrics{RecentDamageEvents: 12, TimeSinceEventSec: 1}, rng)
	require.Len(t, fresh, 1)
	assert.Equal(t, "combat_escalation", fresh[0].ID)
}

func TestLayerRNGIsDeterministicAcrossRuns(t *testing.T) {
	a := weave.NewLayerRNG(42, "combat_intensity")
	b := weave.NewLayerRNG(42, "combat_intensity")
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestLayerRNGDiffersAcrossLayers(t *testing.T) {
	a := weave.NewLayerRNG(42, "combat_intensity")
	b := weave.NewLayerRNG(42, "resource_scarcity")
	assert.NotEqual(t, a.Next(), b.Next())
}
