// Package sessions provides a Redis-backed session store. The client holds
// only an opaque token; the token-to-user mapping lives server-side with a
// TTL.
package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/akomarov/bookshelf/internal/logger"
)

// Store maps opaque session tokens to user ids in Redis.
type Store struct {
	client *redis.Client
	ttl    time.Duration // session lifetime
}

// New creates a session store with the given TTL.
func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// Establish creates a new session for the user and returns the opaque token.
func (s *Store) Establish(ctx context.Context, userID uuid.UUID) (string, error) {
	token := uuid.NewString()

	err := s.client.Set(ctx, sessionKey(token), userID.String(), s.ttl).Err()

	logger.Log.Infow(
		"key", sessionKey(token),
		"user_id", userID,
		"result", "ok",
		"error", err,
	)

	if err != nil {
		return "", err
	}

	return token, nil
}

// Resolve returns the user id for a token. A missing or expired session is
// a normal unauthenticated state, reported via ok=false, not an error.
func (s *Store) Resolve(ctx context.Context, token string) (uuid.UUID, bool, error) {
	val, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return uuid.Nil, false, nil
	}
	if err != nil {
		logger.Log.Errorw("session lookup failed", "error", err)
		return uuid.Nil, false, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		logger.Log.Errorw("malformed session value", "value", val, "error", err)
		return uuid.Nil, false, err
	}

	return userID, true, nil
}

// Revoke removes a session. Revoking an unknown token is not an error.
func (s *Store) Revoke(ctx context.Context, token string) error {
	err := s.client.Del(ctx, sessionKey(token)).Err()
	if err != nil && err != redis.Nil {
		logger.Log.Errorw("session revoke failed", "error", err)
		return err
	}
	return nil
}
