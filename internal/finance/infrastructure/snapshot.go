package infrastructure

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// SnapshotPersister saves and loads the full memory store state as a JSON
// file. Field values and record ordering survive the round trip unchanged,
// so a reloaded store behaves exactly like the one that was saved.
type SnapshotPersister struct {
	path  string
	store *MemoryStore
}

func NewSnapshotPersister(path string, store *MemoryStore) *SnapshotPersister {
	return &SnapshotPersister{path: path, store: store}
}

// Load restores the store from the snapshot file. A missing file is not an
// error; the store simply starts empty.
func (p *SnapshotPersister) Load() error {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("could not read snapshot file: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("could not decode snapshot file: %w", err)
	}

	p.store.Restore(state)
	return nil
}

// Save writes the current store state to a temp file and renames it into
// place, so a crash mid-write never corrupts the previous snapshot.
func (p *SnapshotPersister) Save() error {
	state := p.store.Snapshot()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("could not create snapshot directory: %w", err)
	}

	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("could not write snapshot file: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("could not replace snapshot file: %w", err)
	}
	return nil
}
