package kvstore

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
)

// memoryStore keeps blobs in a map. It backs tests and ephemeral runs; the
// round-trip still goes through JSON so serialization behavior matches the
// file store exactly.
type memoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore returns an empty in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{blobs: make(map[string][]byte)}
}

func (s *memoryStore) Read(key string, out any) {
	s.mu.RLock()
	raw, ok := s.blobs[key]
	s.mu.RUnlock()

	if !ok {
		return
	}

	decodeInto(raw, out)
}

func (s *memoryStore) Write(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "marshal value for key %q", key)
	}

	s.mu.Lock()
	s.blobs[key] = raw
	s.mu.Unlock()

	return nil
}

func (s *memoryStore) Remove(key string) error {
	s.mu.Lock()
	delete(s.blobs, key)
	s.mu.Unlock()

	return nil
}
