// Package session implements the server-side session store: an opaque token
// issued at login, mapped in Redis to the authenticated user's id.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName is the cookie that carries the session token.
const CookieName = "warbler_session"

// currUserKeyPrefix namespaces session keys in Redis.
const currUserKeyPrefix = "curr_user:%s"

// ErrUnavailable is returned when the backing Redis store is not connected.
var ErrUnavailable = errors.New("session store unavailable")

// Store maps opaque session tokens to user ids with a TTL.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore returns a session store backed by the given Redis client.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// TTL returns the configured session lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

func sessionKey(token string) string {
	return fmt.Sprintf(currUserKeyPrefix, token)
}

// Create issues a new opaque token for the given user id.
func (s *Store) Create(ctx context.Context, userID uint) (string, error) {
	if s.client == nil {
		return "", ErrUnavailable
	}

	token := uuid.New().String()
	if err := s.client.Set(ctx, sessionKey(token), userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

// Resolve looks up the user id for a token. A missing or expired token is
// reported as absence, not an error.
func (s *Store) Resolve(ctx context.Context, token string) (uint, bool, error) {
	if s.client == nil {
		return 0, false, ErrUnavailable
	}

	val, err := s.client.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("resolve session: %w", err)
	}

	userID, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		// Corrupt entry; treat as absent and drop it.
		s.client.Del(ctx, sessionKey(token))
		return 0, false, nil
	}
	return uint(userID), true, nil
}

// Destroy removes a session. Destroying an unknown token is a no-op.
func (s *Store) Destroy(ctx context.Context, token string) error {
	if s.client == nil {
		return ErrUnavailable
	}
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
