package mocktest

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"hirehub/assessment/internal/models"
)

const redisKeyPrefix = "mocktest:"

// RedisStore keeps sessions as JSON values with a server-side TTL, so the
// expiry policy holds without a sweep and sessions survive restarts.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, ownerID string) (*models.MockTestSession, error) {
	payload, err := s.rdb.Get(ctx, redisKeyPrefix+ownerID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session models.MockTestSession
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisStore) Put(ctx context.Context, session *models.MockTestSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	// Expiry counts from session creation, so cursor updates must not
	// extend the lifetime.
	remaining := s.ttl - time.Since(session.CreatedAt)
	if remaining <= 0 {
		return s.Delete(ctx, session.OwnerID)
	}
	return s.rdb.Set(ctx, redisKeyPrefix+session.OwnerID, payload, remaining).Err()
}

func (s *RedisStore) Delete(ctx context.Context, ownerID string) error {
	return s.rdb.Del(ctx, redisKeyPrefix+ownerID).Err()
}
