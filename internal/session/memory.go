package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in a mutex-guarded map. State lives for the
// process lifetime only.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Data
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Data),
	}
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Data, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}

	// Hand out a copy so callers mutate their own view until Put.
	cp := *data
	cp.History = make([]Message, len(data.History))
	copy(cp.History, data.History)
	return &cp, nil
}

func (s *MemoryStore) Put(_ context.Context, data *Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now()
	}
	data.UpdatedAt = time.Now()

	cp := *data
	cp.History = make([]Message, len(data.History))
	copy(cp.History, data.History)
	s.sessions[data.ID] = &cp
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error { return nil }

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = nil
	return nil
}
