package storage

import (
	"errors"
	"fmt"

	"tagnote/internal/config"
	"tagnote/internal/notes"
)

var (
	ErrNotFound = errors.New("notes file not found")
	ErrCorrupt  = errors.New("notes file is corrupt")
)

// Repository loads and saves the whole note list as one snapshot.
type Repository interface {
	Load() ([]notes.Note, error)
	Save([]notes.Note) error
	Close() error
}

// Open returns the repository for backend. When seed is set and the store
// does not exist yet it is created empty.
func Open(backend, path string, seed bool) (Repository, error) {
	switch backend {
	case config.BackendJSON, "":
		f := NewJSONFile(path)
		if seed {
			if err := f.Seed(); err != nil {
				return nil, err
			}
		}
		return f, nil
	case config.BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}
