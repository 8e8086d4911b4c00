package persistence

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/astraweave-go/astraweave/ecs"
)

// Serialize writes w to out in AstraWeave's little-endian binary format,
// walking archetypes in canonical order and, within each archetype,
// entities in row order. reg resolves each component's wire type-tag and
// payload encoding.
func Serialize(w *ecs.World, reg *Registry, out io.Writer) error {
	if _, err := out.Write(Magic[:]); err != nil {
		return err
	}
	if err := writeU32(out, FormatVersion); err != nil {
		return err
	}

	var entities []ecs.Entity
	for _, arch := range w.Archetypes() {
		entities = append(entities, arch.Entities()...)
	}
	if err := writeU32(out, uint32(len(entities))); err != nil {
		return err
	}

	for _, e := range entities {
		if err := writeU32(out, e.Index); err != nil {
			return err
		}
		if err := writeU32(out, e.Generation); err != nil {
			return err
		}
		types := ecs.ComponentTypes(w, e)
		if err := writeU32(out, uint32(len(types))); err != nil {
			return err
		}
		for _, t := range types {
			entry, ok := reg.entryForType(t)
			if !ok {
				return fmt.Errorf("persistence: no codec registered for component type %s", t)
			}
			value := ecs.ComponentValue(w, e, t)
			payload, err := entry.encode(value)
			if err != nil {
				return fmt.Errorf("persistence: encode %s: %w", t, err)
			}
			if err := writeU32(out, entry.tag); err != nil {
				return err
			}
			if err := writeU32(out, uint32(len(payload))); err != nil {
				return err
			}
			if _, err := out.Write(payload); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeU32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}
