package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// SlotMeta is the sidecar metadata written alongside every save-slot binary
// ("saves/slots/<id>.awsave").
type SlotMeta struct {
	LevelName       string    `toml:"level_name"`
	Checkpoint      string    `toml:"checkpoint"`
	PlaytimeSeconds float64   `toml:"playtime_seconds"`
	Timestamp       time.Time `toml:"timestamp"`
	CharacterName   string    `toml:"character_name"`
}

// SlotPaths returns the binary save path and its meta.toml sidecar for slot
// id rooted at saveDir (conventionally "saves/slots").
func SlotPaths(saveDir, id string) (dataPath, metaPath string) {
	return filepath.Join(saveDir, id+".awsave"), filepath.Join(saveDir, id+".meta.toml")
}

// NewSlotID generates an opaque save-slot identifier for autosaves and
// quicksaves, where no player-chosen name applies.
func NewSlotID() string {
	return uuid.NewString()
}

// WriteSlotMeta marshals meta as TOML to metaPath, creating parent
// directories as needed.
func WriteSlotMeta(metaPath string, meta SlotMeta) error {
	if err := os.MkdirAll(filepath.Dir(metaPath), 0o755); err != nil {
		return fmt.Errorf("persistence: mkdir for slot meta: %w", err)
	}
	f, err := os.Create(metaPath)
	if err != nil {
		return fmt.Errorf("persistence: create slot meta: %w", err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(meta)
}

// ReadSlotMeta parses the TOML sidecar at metaPath.
func ReadSlotMeta(metaPath string) (SlotMeta, error) {
	var meta SlotMeta
	_, err := toml.DecodeFile(metaPath, &meta)
	if err != nil {
		return SlotMeta{}, fmt.Errorf("persistence: decode slot meta: %w", err)
	}
	return meta, nil
}
