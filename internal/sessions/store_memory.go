package sessions

import (
	"context"
	"sync"

	"resume-builder/internal/resume"
)

// MemoryStore is the in-memory Store used in dev and tests. Snapshots are
// kept as serialized bytes so restore exercises the same repair path as the
// durable stores.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore constructs a MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Load returns the snapshot for a session, if any.
func (s *MemoryStore) Load(ctx context.Context, sessionID string) (resume.ResumeData, bool, error) {
	if err := ctx.Err(); err != nil {
		return resume.ResumeData{}, false, err
	}
	s.mu.RLock()
	raw, ok := s.data[sessionID]
	s.mu.RUnlock()
	if !ok {
		return resume.Default(), false, nil
	}
	data, ok := decodeSnapshot(sessionID, raw)
	return data, ok, nil
}

// Save overwrites the snapshot for a session.
func (s *MemoryStore) Save(ctx context.Context, sessionID string, data resume.ResumeData) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := encodeSnapshot(data)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[sessionID] = raw
	s.mu.Unlock()
	return nil
}

// Clear drops the snapshot for a session.
func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.data, sessionID)
	s.mu.Unlock()
	return nil
}

// put is a test hook for seeding raw, possibly malformed payloads.
func (s *MemoryStore) put(sessionID string, raw []byte) {
	s.mu.Lock()
	s.data[sessionID] = raw
	s.mu.Unlock()
}
