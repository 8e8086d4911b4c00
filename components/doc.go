// Package components declares the plain-value gameplay components every
// other package builds on: position, health, team, ammo, cooldowns, desired
// position, and the AI-agent marker. These are a direct translation of the
// original engine's ecs_components module into ecs.World component types —
// ordinary structs registered once via ecs.Register, with no behavior of
// their own.
package components
