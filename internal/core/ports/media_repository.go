package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/JakeKoks/aicomics/internal/core/domain"
)

// ListMediaFilter carries all query parameters for listing media.
// UserID is always enforced by the service layer for non-admin callers.
type ListMediaFilter struct {
	UserID    int64  // 0 = no owner filter (admin); non-zero = scoped to owner
	MediaType string // optional: filter by media type
	Page      int    // 1-based
	Limit     int    // max rows per page (capped at 100 by service)
}

// MediaRepository defines persistence operations for media catalog entries.
type MediaRepository interface {
	Create(ctx context.Context, media *domain.Media) error
	// FindByID returns domain.ErrMediaNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Media, error)
	// List returns a page of media matching filter and the total count.
	List(ctx context.Context, filter ListMediaFilter) ([]*domain.Media, int64, error)
	Update(ctx context.Context, media *domain.Media) error
	Delete(ctx context.Context, id uuid.UUID) error
	// StatsForUser aggregates item count and total file size for one owner.
	StatsForUser(ctx context.Context, userID int64) (*domain.MediaStats, error)
}
