// Package memory is an in-process KeyValueStore. Data does not survive a restart.
package memory

import (
	"context"
	"sync"

	"astgym/gym-ai/internal/repository"
)

type kvStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewKVStore() repository.KeyValueStore {
	return &kvStore{data: make(map[string][]byte)}
}

func (s *kvStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *kvStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *kvStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
