package orchestrator

import (
	"container/heap"
	"strings"
)

// goapNode is one state in the backward search frontier. need is the set
// of facts that must still hold in the initial state for path, executed
// in order, to reach goal; path is stored in forward (execution) order
// even though the search discovers actions goal-first.
type goapNode struct {
	need    GoapState
	cost    float64
	path    []GoapAction
	pathKey string // joined action names in execution order, for deterministic tie-breaks
}

type goapFrontier []*goapNode

func (f goapFrontier) Len() int { return len(f) }
func (f goapFrontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].pathKey < f[j].pathKey
}
func (f goapFrontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *goapFrontier) Push(x any)         { *f = append(*f, x.(*goapNode)) }
func (f *goapFrontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// maxGoapDepth bounds the search so an unreachable goal fails fast rather
// than exploring forever; the action sets GOAP plans over are small enough
// that any reachable goal is found well within this depth.
const maxGoapDepth = 8

// PlanGoap runs a deterministic backward-chaining A* search over the
// world-state algebra: it starts from goal and repeatedly regresses
// through an action whose effects would establish some still-unmet fact,
// replacing that fact's requirement with the action's own preconditions,
// until the accumulated requirement is already satisfied by initial. Ties
// in total cost are broken by the lexicographically smallest
// concatenation of action names in execution order, so the same inputs
// always produce the same action sequence.
func PlanGoap(initial GoapState, goal GoapState, actions []GoapAction) ([]GoapAction, bool) {
	start := &goapNode{need: goal}
	frontier := &goapFrontier{start}
	heap.Init(frontier)
	visited := map[string]float64{start.need.key(): 0}

	for frontier.Len() > 0 {
		node := heap.Pop(frontier).(*goapNode)
		if initial.Satisfies(node.need) {
			return node.path, true
		}
		if len(node.path) >= maxGoapDepth {
			continue
		}
		for _, a := range actions {
			regressed, ok := regress(node.need, a)
			if !ok {
				continue
			}
			nextCost := node.cost + a.Cost
			k := regressed.key()
			// Only prune a strictly worse rediscovery of the same
			// requirement; an equal-cost alternative is still pushed so the
			// heap's pathKey tie-break (not insertion order) decides which
			// one wins.
			if prev, ok := visited[k]; ok && prev < nextCost {
				continue
			}
			visited[k] = nextCost
			nextPath := make([]GoapAction, 0, len(node.path)+1)
			nextPath = append(nextPath, a)
			nextPath = append(nextPath, node.path...)
			heap.Push(frontier, &goapNode{
				need:    regressed,
				cost:    nextCost,
				path:    nextPath,
				pathKey: joinNames(nextPath),
			})
		}
	}
	return nil, false
}

// regress reports whether a is relevant to need — its effects establish
// at least one fact need still requires, without contradicting any other
// fact need requires — and if so returns the weaker requirement initial
// must satisfy for a (applied at this point) to still reach need: facts
// need asks for that a's effects cover are replaced by a's own
// preconditions.
func regress(need GoapState, a GoapAction) (GoapState, bool) {
	relevant := false
	for f, want := range need {
		if effect, ok := a.Effects[f]; ok {
			if effect != want {
				return nil, false
			}
			relevant = true
		}
	}
	if !relevant {
		return nil, false
	}

	next := make(GoapState, len(need)+len(a.Pre))
	for f, want := range need {
		if _, established := a.Effects[f]; established {
			continue
		}
		next[f] = want
	}
	for f, want := range a.Pre {
		next[f] = want
	}
	return next, true
}

func joinNames(path []GoapAction) string {
	names := make([]string, len(path))
	for i, a := range path {
		names[i] = a.Name
	}
	return strings.Join(names, "|")
}
