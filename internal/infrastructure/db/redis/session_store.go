package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JakeKoks/aicomics/internal/core/domain"
)

const sessionKeyPrefix = "session:"

// sessionRecord is the wire form of a session. The token is part of the key,
// not the value, so a leaked value alone cannot be replayed.
type sessionRecord struct {
	UserID         int64     `json:"user_id"`
	Username       string    `json:"username"`
	Role           int       `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}

// SessionStore keeps session records in Redis keyed by the opaque session
// token, with the key TTL as the expiry mechanism. Sliding renewal is a
// re-save with a pushed-out ExpiresAt.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("save session: already expired at %s", session.ExpiresAt)
	}

	payload, err := json.Marshal(sessionRecord{
		UserID:         session.UserID,
		Username:       session.Username,
		Role:           int(session.Role),
		CreatedAt:      session.CreatedAt,
		ExpiresAt:      session.ExpiresAt,
		LastActivityAt: session.LastActivityAt,
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+session.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Get returns (nil, nil) when the key is absent. A record that fails to
// decode is treated as destroyed rather than surfaced as an error: stale
// blobs from older deployments must not lock users out.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		_ = s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
		return nil, nil
	}

	return &domain.Session{
		ID:             sessionID,
		UserID:         rec.UserID,
		Username:       rec.Username,
		Role:           domain.Role(rec.Role),
		CreatedAt:      rec.CreatedAt,
		ExpiresAt:      rec.ExpiresAt,
		LastActivityAt: rec.LastActivityAt,
	}, nil
}

// Delete removes the session key. Deleting a missing key succeeds.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
