package mocktest

import (
	"context"
	"sync"
	"time"

	"hirehub/assessment/internal/models"
)

// MemoryStore keeps sessions in a process-local map.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.MockTestSession
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]models.MockTestSession),
	}
}

func (s *MemoryStore) Get(_ context.Context, ownerID string) (*models.MockTestSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.sessions[ownerID]
	if !exists {
		return nil, ErrSessionNotFound
	}
	copied := session
	return &copied, nil
}

func (s *MemoryStore) Put(_ context.Context, session *models.MockTestSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.OwnerID] = *session
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, ownerID)
	return nil
}

// PurgeExpired removes sessions created more than olderThan ago, regardless
// of progress, and returns how many were dropped. This bounds memory for
// abandoned tests.
func (s *MemoryStore) PurgeExpired(olderThan time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	purged := 0
	for ownerID, session := range s.sessions {
		if session.CreatedAt.Before(cutoff) {
			delete(s.sessions, ownerID)
			purged++
		}
	}
	return purged
}

// Size returns the current number of stored sessions.
func (s *MemoryStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
