// Package ecs implements AstraWeave's deterministic archetype entity-component
// system: entities are opaque generational handles, components are stored in
// row-per-entity archetype tables keyed by the entity's canonical (sorted)
// component signature, and all structural mutation is deferred through a
// CommandBuffer so that iteration never observes a half-migrated row.
//
// Archetypes are ordered by the sorted string form of their component type
// names, not by insertion order or pointer identity, so that two worlds built
// from the same spawn sequence on different platforms iterate archetypes (and
// therefore hash and serialize) identically.
package ecs
