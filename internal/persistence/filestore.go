// Package persistence stores the progression record as a JSON file. Writes
// are atomic so a crash mid-save leaves the previous record intact.
package persistence

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/json-iterator/go"

	"github.com/wrenhollow/bluebot/api/schemas"
)

// FileStore implements schemas.Persistence over a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore returns a store writing to the given path. The parent
// directory is created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Load reads the saved record. A missing file is not an error and returns
// (nil, nil); an unreadable or unparsable file returns ErrCorruptRecord so
// the caller can decide whether to start over.
func (s *FileStore) Load() (*schemas.ProgressionRecord, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("persistence: reading %s: %w", s.path, err)
	}
	var record schemas.ProgressionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("persistence: parsing %s: %v: %w", s.path, err, schemas.ErrCorruptRecord)
	}
	if record.CurrentStep == "" {
		return nil, fmt.Errorf("persistence: %s has no current step: %w", s.path, schemas.ErrCorruptRecord)
	}
	return &record, nil
}

// Save writes the record through a temp file and rename, so readers never
// observe a partial write.
func (s *FileStore) Save(record *schemas.ProgressionRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("persistence: encoding record: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("persistence: creating %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("persistence: creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("persistence: writing record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("persistence: closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("persistence: replacing %s: %w", s.path, err)
	}
	return nil
}
