package weave

import "sort"

// Config bounds how many intents an adjudicator may accept per tick and how
// long an accepted intent's cooldown key stays on cooldown.
type Config struct {
	BudgetPerTick uint32
	Cooldowns     map[string]uint64 // cooldown key -> cooldown length in ticks
	MinPriority   float32
}

// DefaultConfig returns reasonable defaults; callers load real values from
// package config.
func DefaultConfig() Config {
	return Config{
		BudgetPerTick: 20,
		Cooldowns:     map[string]uint64{},
		MinPriority:   0.3,
	}
}

// Adjudicator accepts or rejects WeaveIntents proposed by pattern
// detectors, enforcing a per-tick budget and per-key cooldowns. It is not
// safe for concurrent use; callers invoke Adjudicate once per tick from the
// AI_PLANNING (or a dedicated weave) stage.
type Adjudicator struct {
	cfg               Config
	cooldownDeadlines map[string]uint64 // keyed by WeaveIntent.CooldownKey
	budgetSpent       uint32
}

// NewAdjudicator returns an Adjudicator using cfg.
func NewAdjudicator(cfg Config) *Adjudicator {
	return &Adjudicator{
		cfg:               cfg,
		cooldownDeadlines: make(map[string]uint64),
	}
}

// Decision records what happened to one candidate intent during
// adjudication, for telemetry and tests.
type Decision struct {
	Intent   WeaveIntent
	Accepted bool
	Reason   string // set when !Accepted
}

// Adjudicate resets the per-tick budget counter, sorts candidates by
// priority descending (ties broken lexicographically by ID), and accepts
// each iff priority >= MinPriority, the remaining budget covers its cost,
// and its cooldown (if any) has elapsed by currentTick. Accepted intents
// advance their cooldown deadline and debit the budget.
func (a *Adjudicator) Adjudicate(candidates []WeaveIntent, currentTick uint64) []Decision {
	a.budgetSpent = 0

	sorted := make([]WeaveIntent, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return sorted[i].ID < sorted[j].ID
	})

	decisions := make([]Decision, 0, len(sorted))
	for _, intent := range sorted {
		reason, ok := a.evaluate(intent, currentTick)
		if !ok {
			decisions = append(decisions, Decision{Intent: intent, Accepted: false, Reason: reason})
			continue
		}
		a.accept(intent, currentTick)
		decisions = append(decisions, Decision{Intent: intent, Accepted: true})
	}
	return decisions
}

func (a *Adjudicator) evaluate(intent WeaveIntent, currentTick uint64) (string, bool) {
	if intent.Priority < a.cfg.MinPriority {
		return "below_min_priority", false
	}
	if a.budgetSpent+intent.Cost > a.cfg.BudgetPerTick {
		return "budget_exhausted", false
	}
	if deadline, onCooldown := a.cooldownDeadlines[intent.CooldownKey]; onCooldown && deadline > currentTick {
		return "on_cooldown", false
	}
	return "", true
}

func (a *Adjudicator) accept(intent WeaveIntent, currentTick uint64) {
	a.budgetSpent += intent.Cost
	if cd, ok := a.cfg.Cooldowns[intent.CooldownKey]; ok {
		a.cooldownDeadlines[intent.CooldownKey] = currentTick + cd
	}
}

// BudgetSpent returns how much of the per-tick budget the last Adjudicate
// call consumed.
func (a *Adjudicator) BudgetSpent() uint32 { return a.budgetSpent }

// BudgetRemaining returns the unspent portion of the per-tick budget after
// the last Adjudicate call.
func (a *Adjudicator) BudgetRemaining() uint32 {
	if a.budgetSpent >= a.cfg.BudgetPerTick {
		return 0
	}
	return a.cfg.BudgetPerTick - a.budgetSpent
}
