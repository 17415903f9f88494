package blob

import (
	"context"
	"sync"
)

// MemoryStore is the default adapter: process-local, nothing survives a
// restart. It is also what the service tests run against.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore builds an empty in-memory blob store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: map[string][]byte{}}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = stored
	return nil
}

func (s *MemoryStore) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}
