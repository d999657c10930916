package clientstate

import (
	"context"
	"sync"
)

// MemoryStorage is the in-process Storage backend, the stand-in for
// browser local storage.
type MemoryStorage struct {
	mu    sync.RWMutex
	blobs map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{blobs: make(map[string]string)}
}

func (s *MemoryStorage) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[key]
	return blob, ok, nil
}

func (s *MemoryStorage) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = value
	return nil
}

func (s *MemoryStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}
