package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned for unknown or revoked session tokens
var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps active sessions in Redis so that logout revokes a token
// before its JWT expiry.
type SessionStore interface {
	Save(ctx context.Context, token string, userID uint, ttl time.Duration) error
	Validate(ctx context.Context, token string) error
	Revoke(ctx context.Context, token string) error
}

// RedisSessionStore is the Redis-backed SessionStore implementation
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a session store on the given Redis client
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *RedisSessionStore) Save(ctx context.Context, token string, userID uint, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Validate(ctx context.Context, token string) error {
	err := s.client.Get(ctx, sessionKey(token)).Err()
	if errors.Is(err, redis.Nil) {
		return ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to validate session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
