// Package storage provides the key-value backends behind the preference store
package storage

import (
	"context"
	"sync"

	"meteorenard.app/pkg/errors"
)

// MemoryStore implements KeyValueStore port in process memory. Values do
// not survive a restart.
type MemoryStore struct {
	data  map[string][]byte
	mutex sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("store key cannot be empty")
	}

	s.mutex.RLock()
	value, exists := s.data[key]
	s.mutex.RUnlock()

	if !exists {
		return nil, errors.NewNotFoundError("key not found")
	}
	return copyBytes(value), nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("store value cannot be nil")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[key] = copyBytes(value)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, key)
	return nil
}

func (s *MemoryStore) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("store key cannot be empty")
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, exists := s.data[key]
	return exists, nil
}

// Ping always succeeds
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func copyBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
