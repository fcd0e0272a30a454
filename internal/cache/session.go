package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"reelcritic/internal/api/models"
)

// ErrNoSession is returned when no session exists for the given user.
var ErrNoSession = errors.New("no active session")

// SessionStore keeps the logged-in user's snapshot in redis, keyed per user.
// It replaces the browser's `currentUser`/`isLoggedIn` persistent keys and is
// constructed once in main and passed to whoever needs it; there is no
// module-level singleton.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("session:user:%d", userID)
}

// Save stores the current-user snapshot for the session lifetime.
func (s *SessionStore) Save(ctx context.Context, user *models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(user.ID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Current returns the stored snapshot for the user, or ErrNoSession.
func (s *SessionStore) Current(ctx context.Context, userID int64) (*models.User, error) {
	payload, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, fmt.Errorf("failed to decode session user: %w", err)
	}
	return &user, nil
}

// Clear drops the session on logout.
func (s *SessionStore) Clear(ctx context.Context, userID int64) error {
	return s.client.Del(ctx, sessionKey(userID)).Err()
}
