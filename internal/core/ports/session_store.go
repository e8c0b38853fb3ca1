package ports

import (
	"context"

	"github.com/JakeKoks/aicomics/internal/core/domain"
)

// SessionStore persists sessions in an external key-value cache. The store
// owns session records exclusively; the auth service keeps no in-process
// session cache and re-reads the store on every validation.
type SessionStore interface {
	// Save writes the session with a TTL derived from its ExpiresAt. Saving
	// an existing ID overwrites it, which is how sliding renewal works.
	Save(ctx context.Context, session *domain.Session) error
	// Get returns (nil, nil) when the session does not exist or has expired.
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	// Delete removes the session. Deleting a missing session is not an error.
	Delete(ctx context.Context, sessionID string) error
}
