package mocktest

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"hirehub/assessment/internal/models"
	"hirehub/assessment/internal/parser"
)

func storedSession(ownerID string, createdAt time.Time) *models.MockTestSession {
	return &models.MockTestSession{
		OwnerID:   ownerID,
		Questions: []parser.MCQ{{Question: "q", Options: []string{"a", "b", "c", "d"}, Correct: "A", Level: "beginner"}},
		CreatedAt: createdAt,
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "user-1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	if err := store.Put(ctx, storedSession("user-1", time.Now())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	session, err := store.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.OwnerID != "user-1" || len(session.Questions) != 1 {
		t.Fatalf("unexpected session: %+v", session)
	}

	// the store hands out copies; mutating one must not affect stored state
	session.CurrentIndex = 7
	again, _ := store.Get(ctx, "user-1")
	if again.CurrentIndex != 0 {
		t.Fatalf("stored session mutated through a returned copy")
	}

	if err := store.Delete(ctx, "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, "user-1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, "user-1"); err != nil {
		t.Fatalf("deleting an absent session must not fail: %v", err)
	}
}

func TestMemoryStorePurgeExpired(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Put(ctx, storedSession("stale", time.Now().Add(-61*time.Minute)))
	store.Put(ctx, storedSession("fresh", time.Now().Add(-10*time.Minute)))

	purged := store.PurgeExpired(time.Hour)
	if purged != 1 {
		t.Fatalf("expected 1 purged session, got %d", purged)
	}
	if _, err := store.Get(ctx, "stale"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("stale session must be gone, got %v", err)
	}
	if _, err := store.Get(ctx, "fresh"); err != nil {
		t.Fatalf("fresh session must survive: %v", err)
	}
	if store.Size() != 1 {
		t.Fatalf("expected size 1, got %d", store.Size())
	}
}

func TestNextOnExhaustedStoredSession(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	session := storedSession("user-1", time.Now())
	session.CurrentIndex = len(session.Questions)
	store.Put(ctx, session)

	orchestrator := NewOrchestrator(store, &fakeProvider{}, nil, zap.NewNop())
	if _, err := orchestrator.Next(ctx, "user-1"); !errors.Is(err, ErrTestExhausted) {
		t.Fatalf("expected ErrTestExhausted, got %v", err)
	}
	if _, err := store.Get(ctx, "user-1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("exhausted session must be deleted, got %v", err)
	}
}
