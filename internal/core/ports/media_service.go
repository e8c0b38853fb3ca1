package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/JakeKoks/aicomics/internal/core/domain"
)

// Identity is the caller's authenticated identity as seen by the service
// layer, used for ownership and role checks.
type Identity struct {
	UserID int64
	Role   domain.Role
}

// CreateMediaInput carries the metadata for a new catalog entry.
type CreateMediaInput struct {
	Caller           Identity
	Filename         string
	OriginalFilename string
	MimeType         string
	MediaType        string
	FileSize         int64
	Tags             []string
	IsPublic         bool
}

// UpdateMediaInput carries the mutable fields of a catalog entry. Nil
// pointers leave the current value untouched.
type UpdateMediaInput struct {
	Caller   Identity
	ID       uuid.UUID
	Tags     []string
	IsPublic *bool
}

// ListMediaInput carries all parameters for the list endpoint.
type ListMediaInput struct {
	Caller    Identity
	MediaType string
	Page      int
	Limit     int
}

// ListMediaResult is returned by List.
type ListMediaResult struct {
	Items      []*domain.Media `json:"media"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"pages"`
}

// MediaService defines use-case operations for the media catalog.
type MediaService interface {
	Create(ctx context.Context, input CreateMediaInput) (*domain.Media, error)
	// Get enforces visibility: owner, public items, or Admin and above.
	Get(ctx context.Context, caller Identity, id uuid.UUID) (*domain.Media, error)
	List(ctx context.Context, input ListMediaInput) (*ListMediaResult, error)
	Update(ctx context.Context, input UpdateMediaInput) (*domain.Media, error)
	Delete(ctx context.Context, caller Identity, id uuid.UUID) error
	StatsForUser(ctx context.Context, userID int64) (*domain.MediaStats, error)
}
