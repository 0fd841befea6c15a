package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// StateFileName is the fixed name of the JSON state blob inside the data dir.
const StateFileName = "state.json"

// Persistence handles the disk I/O for the Store.
type Persistence struct {
	dataDir string
}

// NewPersistence initializes a persistence handler rooted at dir, creating
// it if necessary. An empty dir resolves to the user config directory,
// falling back to the current directory.
func NewPersistence(dir string) (*Persistence, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		dir = filepath.Join(base, "userdesk")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Persistence{dataDir: dir}, nil
}

// Save writes the state atomically: marshal, write to a temp file, rename.
// A crash mid-save leaves either the old file or the new one, never a
// corrupt mix.
func (p *Persistence) Save(state persistedState) error {
	path := filepath.Join(p.dataDir, StateFileName)
	tmp := path + ".tmp"

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads the state file. A missing file is not an error; it returns
// (nil, nil) so the caller starts with empty state.
func (p *Persistence) Load() (*persistedState, error) {
	data, err := os.ReadFile(filepath.Join(p.dataDir, StateFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}
