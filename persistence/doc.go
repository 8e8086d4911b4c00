// Package persistence implements AstraWeave's binary world serializer: a
// little-endian format (magic "AWS0") that walks archetypes in their
// canonical sorted-signature order and writes each entity's components as
// tagged, length-prefixed payloads. The same archetype-ordered walk backs
// package determinism's streaming hash, so a hash computed over a freshly
// simulated world and one computed after a save/load round-trip agree.
package persistence
