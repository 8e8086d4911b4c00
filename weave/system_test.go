package weave_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astraweave-go/astraweave/ecs"
	"github.com/astraweave-go/astraweave/weave"
)

func TestRunPushesAcceptedAndRejectedEvents(t *testing.T) {
	tr := ecs.NewTypeRegistry()
	w := ecs.NewWorld(tr)

	adj := weave.NewAdjudicator(weave.Config{BudgetPerTick: 5, Cooldowns: map[string]uint64{}, MinPriority: 0.3})
	detectors := []weave.PatternDetector{
		weave.LowHealthClusterDetector{Threshold: 0.25, MinClusterSize: 3},
		weave.CombatIntensityDetector{EventsThreshold: 10, TimeWindowSec: 5.0},
	}
	metrics := weave.WorldMetrics{
		AvgHealth:           0.1,
		CriticalHealthCount: 4,
		RecentDamageEvents:  20,
		TimeSinceEventSec:   30, // stale, so combat_intensity stays silent
	}

	decisions := weave.Run(w, adj, detectors, metrics, 7)
	require.Len(t, decisions, 1)
	assert.True(t, decisions[0].Accepted)

	accepted := ecs.DrainEvents[weave.WeaveIntentEvent](w)
	require.Len(t, accepted, 1)
	assert.Equal(t, "aid_event", accepted[0].Intent.ID)

	rejected := ecs.DrainEvents[weave.WeaveIntentRejectedEvent](w)
	assert.Empty(t, rejected)
}

func TestRunIsDeterministicAcrossRepeatedCalls(t *testing.T) {
	tr := ecs.NewTypeRegistry()
	metrics := weave.WorldMetrics{
		ResourceScarcity: map[string]float32{"food": 0.1, "water": 0.2},
		FactionTensions:  map[string]float32{"red_vs_blue": 0.9},
	}
	detectors := []weave.PatternDetector{
		weave.ResourceScarcityDetector{Threshold: 0.5},
		weave.FactionConflictDetector{Threshold: 0.6},
	}

	var results [][]weave.Decision
	for i := 0; i < 3; i++ {
		w := ecs.NewWorld(tr)
		adj := weave.NewAdjudicator(weave.DefaultConfig())
		results = append(results, weave.Run(w, adj, detectors, metrics, 99))
	}

	for i := 1; i < len(results); i++ {
		require.Len(t, results[i], len(results[0]))
		for j := range results[0] {
			assert.Equal(t, results[0][j].Intent.ID, results[i][j].Intent.ID)
			assert.Equal(t, results[0][j].Accepted, results[i][j].Accepted)
		}
	}
}
