// Package determinism computes a streaming hash over a world's archetype-
// ordered state, used to verify that replaying the same seed and command
// stream produces bit-identical results across independent runs.
// The walk order is exactly package persistence's serialization order, so a
// hash taken before a save and one taken after a load of the same world
// agree.
package determinism
