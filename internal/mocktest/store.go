package mocktest

import (
	"context"
	"errors"
	"time"

	"hirehub/assessment/internal/models"
)

var (
	ErrSessionNotFound = errors.New("mock test session not found")

	// ErrTestExhausted is returned when next is called after every question
	// was served; the session is gone by the time the caller sees this.
	ErrTestExhausted = errors.New("mock test exhausted")

	// ErrUpstream marks generation failures that cannot be papered over: a
	// mock test without questions is useless, so nothing is stored.
	ErrUpstream = errors.New("failed to generate questions")
)

// Store is the keyed session store, one session per owner. The in-process
// implementation is process-local state: a restart drops every in-flight
// session, which the one-hour expiry policy makes acceptable. The Redis
// implementation survives restarts and can be shared across instances.
type Store interface {
	Get(ctx context.Context, ownerID string) (*models.MockTestSession, error)
	Put(ctx context.Context, session *models.MockTestSession) error
	Delete(ctx context.Context, ownerID string) error
}

// Sweeper is implemented by stores that need an external expiry sweep. The
// Redis store intentionally does not implement it; key TTLs cover expiry
// there.
type Sweeper interface {
	PurgeExpired(olderThan time.Duration) int
}
