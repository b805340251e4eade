package blobstore

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store used by tests.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte

	// PutErr, when set, makes every Put fail as a storage write error.
	PutErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

func (s *MemoryStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PutErr != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteFailed, s.PutErr)
	}
	if _, exists := s.objects[key]; exists {
		return "", fmt.Errorf("%w: key %q already exists", ErrWriteFailed, key)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	s.objects[key] = cp
	return "memory://" + key, nil
}

func (s *MemoryStore) URL(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.objects[key]; !exists {
		return "", fmt.Errorf("key %q not found", key)
	}
	return "memory://" + key, nil
}

// Len reports how many objects were stored.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
