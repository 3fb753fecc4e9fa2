package kvstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// fileStore persists each key as <dataDir>/<key>.json. Writes go through a
// temp file and rename so a crashed write never leaves a half-written blob
// behind; a subsequent Read of a torn file would otherwise silently fall back
// and drop the collection.
type fileStore struct {
	mu      sync.RWMutex
	dataDir string
}

// NewFileStore creates the data directory if needed and returns a Store
// backed by it.
func NewFileStore(dataDir string) (Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create store data directory")
	}

	return &fileStore{dataDir: dataDir}, nil
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dataDir, key+".json")
}

// Read decodes the blob under key into out. Any failure leaves out untouched.
func (s *fileStore) Read(key string, out any) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		return
	}

	decodeInto(raw, out)
}

// Write serializes value and atomically replaces the blob under key.
func (s *fileStore) Write(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "marshal value for key %q", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dataDir, key+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "write value for key %q", key)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "close temp file")
	}

	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "replace blob for key %q", key)
	}

	return nil
}

// Remove deletes the blob under key. Removing an absent key is not an error.
func (s *fileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "remove blob for key %q", key)
	}

	return nil
}
