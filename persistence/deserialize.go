package persistence

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/astraweave-go/astraweave/ecs"
)

// Deserialize reconstructs a world from in, using tr as the fresh world's
// TypeRegistry and reg to decode payloads back into boxed component values.
// Entity indices and generations are restored exactly as written, since
// other components may hold entity handles as references.
func Deserialize(in io.Reader, reg *Registry, tr *ecs.TypeRegistry) (*ecs.World, error) {
	var magic [4]byte
	if _, err := io.ReadFull(in, magic[:]); err != nil {
		return nil, fmt.Errorf("persistence: read magic: %w", err)
	}
	if magic != Magic {
		return nil, fmt.Errorf("persistence: bad magic %q, want %q", magic, Magic)
	}
	version, err := readU32(in)
	if err != nil {
		return nil, fmt.Errorf("persistence: read version: %w", err)
	}
	if version != FormatVersion {
		return nil, fmt.Errorf("persistence: unsupported format version %d", version)
	}

	count, err := readU32(in)
	if err != nil {
		return nil, fmt.Errorf("persistence: read entity count: %w", err)
	}

	w := ecs.NewWorld(tr)
	for i := uint32(0); i < count; i++ {
		index, err := readU32(in)
		if err != nil {
			return nil, fmt.Errorf("persistence: read entity index: %w", err)
		}
		generation, err := readU32(in)
		if err != nil {
			return nil, fmt.Errorf("persistence: read generation: %w", err)
		}
		componentCount, err := readU32(in)
		if err != nil {
			return nil, fmt.Errorf("persistence: read component count: %w", err)
		}
		e := w.RestoreEntity(index, generation)
		for c := uint32(0); c < componentCount; c++ {
			tag, err := readU32(in)
			if err != nil {
				return nil, fmt.Errorf("persistence: read type tag: %w", err)
			}
			payloadLen, err := readU32(in)
			if err != nil {
				return nil, fmt.Errorf("persistence: read payload len: %w", err)
			}
			payload := make([]byte, payloadLen)
			if _, err := io.ReadFull(in, payload); err != nil {
				return nil, fmt.Errorf("persistence: read payload: %w", err)
			}
			entry, ok := reg.entryForTag(tag)
			if !ok {
				return nil, fmt.Errorf("persistence: unknown type tag %d", tag)
			}
			value, err := entry.decode(payload)
			if err != nil {
				return nil, fmt.Errorf("persistence: decode tag %d: %w", tag, err)
			}
			ecs.InsertBoxed(w, e, entry.typ, value)
		}
	}
	return w, nil
}

func readU32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}
