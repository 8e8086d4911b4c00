package orchestrator

import "sort"

// GoapFact is one boolean proposition in the small world-state algebra
// GOAP plans over. Facts are data, not code, so the action set can be
// extended without touching the search itself.
type GoapFact string

const (
	FactEnemyInRange    GoapFact = "enemy_in_range"
	FactHasAmmo         GoapFact = "has_ammo"
	FactEnemyNeutralized GoapFact = "enemy_neutralized"
)

// GoapState is an immutable snapshot of fact truth values. Apply returns a
// new state; it never mutates the receiver, so states can be shared freely
// across open/closed search sets.
type GoapState map[GoapFact]bool

// Apply returns a copy of s with patch's entries overlaid.
func (s GoapState) Apply(patch GoapState) GoapState {
	next := make(GoapState, len(s)+len(patch))
	for k, v := range s {
		next[k] = v
	}
	for k, v := range patch {
		next[k] = v
	}
	return next
}

// Satisfies reports whether every fact in want holds in s.
func (s GoapState) Satisfies(want GoapState) bool {
	for k, v := range want {
		if s[k] != v {
			return false
		}
	}
	return true
}

// key produces a stable map-key representation of s for the backward
// search's visited set. A fact absent from s is "don't care", not false,
// which is exactly the distinction the search's partial goal states need:
// sorting the present fact names (rather than ranging over a fixed closed
// set) keeps the key correct for any GoapFact the action set introduces,
// not just the three named above.
func (s GoapState) key() string {
	names := make([]string, 0, len(s))
	for f := range s {
		names = append(names, string(f))
	}
	sort.Strings(names)

	buf := make([]byte, 0, len(names)*2)
	for _, n := range names {
		buf = append(buf, n...)
		buf = append(buf, 0)
		if s[GoapFact(n)] {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 2)
		}
	}
	return string(buf)
}
