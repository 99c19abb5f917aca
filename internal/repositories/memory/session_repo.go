// Package memory provides a map-backed session repository for local runs
// and tests.
package memory

import (
	"context"
	"sync"

	"hirehub/assessment/internal/interview"
	"hirehub/assessment/internal/models"
)

type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]models.InterviewSession
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{
		sessions: make(map[string]models.InterviewSession),
	}
}

func (r *SessionRepo) FindByID(_ context.Context, sessionID string) (*models.InterviewSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[sessionID]
	if !exists {
		return nil, interview.ErrSessionNotFound
	}
	// copy so callers never mutate stored state without a Save
	copied := session
	return &copied, nil
}

func (r *SessionRepo) Save(_ context.Context, session *models.InterviewSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.SessionID] = *session
	return nil
}
