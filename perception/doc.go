// Package perception builds the per-tick, per-agent WorldSnapshot: the
// sole input any orchestrator ever sees. BuildSnapshot is a pure function of
// (world, agent, tick) — it enumerates, redacts, and stably sorts, but
// never mutates the world.
package perception
