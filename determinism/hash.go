package determinism

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/astraweave-go/astraweave/ecs"
	"github.com/astraweave-go/astraweave/persistence"
)

// Codecs is the subset of persistence.Registry the hash needs: a way to
// turn a component's boxed value into canonical payload bytes. Reusing the
// persistence registry means a single manifest of component codecs drives
// both save/load and the determinism hash.
type Codecs = *persistence.Registry

// Hash walks w's archetypes in canonical order and, within each archetype,
// its rows in order, feeding a streaming xxhash with each entity's index,
// generation, and encoded component payloads. Two worlds built from the
// same initial state and the same ordered command stream (including RNG
// seeds) hash identically regardless of process or platform.
func Hash(w *ecs.World, reg Codecs) (uint64, error) {
	h := xxhash.New()
	var scratch [4]byte

	writeU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(scratch[:], v)
		h.Write(scratch[:])
	}

	for _, arch := range w.Archetypes() {
		for _, e := range arch.Entities() {
			writeU32(e.Index)
			writeU32(e.Generation)
			types := ecs.ComponentTypes(w, e)
			writeU32(uint32(len(types)))
			for _, t := range types {
				value := ecs.ComponentValue(w, e, t)
				tag, payload, err := persistence.EncodeForHash(reg, t, value)
				if err != nil {
					return 0, fmt.Errorf("determinism: %w", err)
				}
				writeU32(tag)
				writeU32(uint32(len(payload)))
				h.Write(payload)
			}
		}
	}
	return h.Sum64(), nil
}
