package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tagnote/internal/notes"
)

type JSONFile struct {
	path string
}

// record is the on-disk shape. Older files stored the body as a one-element
// "command" list; Load still reads them.
type record struct {
	Tag     string   `json:"tag"`
	Body    string   `json:"body"`
	Command []string `json:"command,omitempty"`
}

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

func (f *JSONFile) Load() ([]notes.Note, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, f.path)
	}
	if err != nil {
		return nil, err
	}
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, f.path, err)
	}
	out := make([]notes.Note, 0, len(records))
	for _, r := range records {
		n := notes.Note{Tag: r.Tag, Body: r.Body}
		if n.Body == "" && len(r.Command) > 0 {
			n.Body = r.Command[0]
		}
		out = append(out, n)
	}
	return out, nil
}

func (f *JSONFile) Save(list []notes.Note) error {
	records := make([]record, 0, len(list))
	for _, n := range list {
		records = append(records, record{Tag: n.Tag, Body: n.Body})
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}

// Seed writes an empty list if the file does not exist.
func (f *JSONFile) Seed() error {
	if _, err := os.Stat(f.path); !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return f.Save(nil)
}

func (f *JSONFile) Close() error {
	return nil
}
