package anchor

// State is one of the three points in an anchor's repair lifecycle.
type State uint8

const (
	StateCorrupted State = iota
	StateRepairing
	StateStabilized
)

func (s State) String() string {
	switch s {
	case StateRepairing:
		return "Repairing"
	case StateStabilized:
		return "Stabilized"
	default:
		return "Corrupted"
	}
}

// UnlockKind names what a stabilized anchor grants. Empty means the anchor
// is cosmetic/narrative only and unlocks nothing.
type UnlockKind string

// Anchor tracks one loom node's repair progress. Progress is a fraction in
// [0, 1]; leaving the trigger zone pauses advancement rather than
// resetting it, unless the player stays away past GraceTicks, at which
// point progress resets to zero and the anchor reverts to Corrupted.
type Anchor struct {
	ID       uint64
	State    State
	Progress float32

	Unlocks          UnlockKind
	PresentationHint string

	ticksOutOfZone uint64
}

// New returns a fresh Corrupted anchor. unlocks may be empty.
func New(id uint64, unlocks UnlockKind) *Anchor {
	return &Anchor{ID: id, State: StateCorrupted, Unlocks: unlocks}
}

// Tick advances one fixed step of repair logic. progressPerTick is the
// fraction of the repair bar filled per tick while inZone; graceTicks is
// how long progress survives the player leaving the zone before resetting.
// Returns true exactly on the tick the anchor transitions to Stabilized.
func (a *Anchor) Tick(inZone bool, progressPerTick float32, graceTicks uint64) bool {
	if a.State == StateStabilized {
		return false
	}

	if !inZone {
		a.ticksOutOfZone++
		if a.ticksOutOfZone > graceTicks {
			a.Progress = 0
			a.State = StateCorrupted
			a.ticksOutOfZone = 0
		}
		return false
	}

	a.ticksOutOfZone = 0
	a.Progress += progressPerTick
	if a.Progress >= 1 {
		a.Progress = 1
		a.State = StateStabilized
		return true
	}
	a.State = StateRepairing
	return false
}
