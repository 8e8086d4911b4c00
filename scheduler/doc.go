// Package scheduler runs the world through a fixed sequence of stages once
// per tick: PERCEPTION, SIMULATION, AI_PLANNING, PHYSICS, POST_SIMULATION,
// PRESENTATION. Structural mutations queued during a stage
// are flushed to the world before the next stage begins, so no stage ever
// observes a half-applied migration from the one before it.
package scheduler
