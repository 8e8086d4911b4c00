package orchestrator

import (
	"sort"

	"github.com/astraweave-go/astraweave/perception"
	"github.com/astraweave-go/astraweave/tools"
)

// Candidate is one action the utility orchestrator can score, paired with
// the feature values that feed Weights.
type Candidate struct {
	Step     tools.ActionStep
	Features map[string]float64
}

// Weights maps a feature name to its contribution to a candidate's score.
// A candidate's score is the weighted sum over features present in both
// the candidate and Weights; missing features contribute zero.
type Weights map[string]float64

// UtilityOrchestrator scores a fixed set of candidate actions by a
// weighted sum of features and proposes the top-scoring one as a
// one-step plan. Generate builds the candidate set for a
// snapshot; it is a field rather than a hardcoded method so callers can
// swap in a different feature set without re-deriving the scoring logic.
type UtilityOrchestrator struct {
	Weights  Weights
	Generate func(snapshot perception.WorldSnapshot) []Candidate
}

// NewUtilityOrchestrator returns a UtilityOrchestrator with default
// weights favoring low-health, in-range enemies while the agent has ammo,
// with a small penalty per cell of distance. The default Generate yields
// one CoverFire candidate per visible enemy; it offers no move or retreat
// candidates.
func NewUtilityOrchestrator() *UtilityOrchestrator {
	return &UtilityOrchestrator{
		Weights: Weights{
			"enemy_low_health": 2.0,
			"in_range":         1.5,
			"has_ammo":         1.0,
			"distance_penalty": -0.1,
		},
		Generate: defaultCandidates,
	}
}

// ProposePlan scores every candidate Generate returns and proposes the
// highest-scoring one. Ties are broken by candidate order (stable sort),
// so Generate's ordering controls the deterministic tie-break.
func (u *UtilityOrchestrator) ProposePlan(snapshot perception.WorldSnapshot) tools.PlanIntent {
	candidates := u.Generate(snapshot)
	if len(candidates) == 0 {
		return onePlan(tools.NewWait(1.0))
	}

	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		scores[i] = u.score(c)
	}

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return scores[order[i]] > scores[order[j]] })

	return onePlan(candidates[order[0]].Step)
}

func (u *UtilityOrchestrator) score(c Candidate) float64 {
	var total float64
	for feature, value := range c.Features {
		total += u.Weights[feature] * value
	}
	return total
}

func defaultCandidates(snapshot perception.WorldSnapshot) []Candidate {
	var out []Candidate
	hasAmmo := 0.0
	if snapshot.Me.Ammo > 0 {
		hasAmmo = 1.0
	}
	for _, e := range snapshot.Enemies {
		dist := float64(chebyshev(snapshot.Me.Pos, e.Pos))
		lowHealth := 0.0
		if e.HP < 50 {
			lowHealth = 1.0
		}
		inRange := 0.0
		if dist <= 6 {
			inRange = 1.0
		}
		out = append(out, Candidate{
			Step: tools.NewCoverFire(e.ID, 2.0),
			Features: map[string]float64{
				"enemy_low_health": lowHealth,
				"in_range":         inRange,
				"has_ammo":         hasAmmo,
				"distance_penalty": dist,
			},
		})
	}
	return out
}
