// Package memory provides in-memory repository implementations, used
// by tests and as a fallback when no database is configured.
package memory

import (
	"context"
	"sync"

	"github.com/dgz9/codetype/internal/repository"
)

// PrefsStore is a mutex-guarded in-memory PrefsRepository.
type PrefsStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewPrefsStore() *PrefsStore {
	return &PrefsStore{blobs: make(map[string][]byte)}
}

var _ repository.PrefsRepository = (*PrefsStore)(nil)

func (s *PrefsStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (s *PrefsStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob := make([]byte, len(value))
	copy(blob, value)
	s.blobs[key] = blob
	return nil
}

func (s *PrefsStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}
