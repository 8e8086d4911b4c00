package anchor

import "github.com/astraweave-go/astraweave/ecs"

// StabilizedEvent is pushed the tick an anchor transitions to Stabilized.
type StabilizedEvent struct {
	AnchorID uint64
	Unlocks  UnlockKind
}

// UnlockGranted is the command-buffer-applied effect of a stabilized
// anchor that gates an ability or deployable. A system elsewhere (out of
// this package's scope) inserts it onto whichever entity owns the unlocked
// capability; anchor only decides that an unlock happened, not who gets it.
type UnlockGranted struct {
	Kind UnlockKind
}

// TickAnchor advances a, pushing a StabilizedEvent and queuing an
// UnlockGranted insert on owner (typically the player entity) the tick it
// stabilizes and names a non-empty Unlocks kind.
func TickAnchor(w *ecs.World, cb *ecs.CommandBuffer, owner ecs.Entity, a *Anchor, inZone bool, progressPerTick float32, graceTicks uint64) {
	if a.Tick(inZone, progressPerTick, graceTicks) {
		ecs.PushEvent(w, StabilizedEvent{AnchorID: a.ID, Unlocks: a.Unlocks})
		if a.Unlocks != "" {
			ecs.InsertDeferred(cb, owner, UnlockGranted{Kind: a.Unlocks})
		}
	}
}
