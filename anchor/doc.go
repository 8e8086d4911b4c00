// Package anchor implements the loom-node repair lifecycle:
// Corrupted -> Repairing(progress) -> Stabilized. Progress
// advances while a player stands in the trigger zone; leaving the zone
// pauses rather than resets progress, unless the player is gone longer
// than a grace period. Stabilization emits an event and, for anchors that
// gate an ability or deployable, queues an unlock via the command buffer.
package anchor
