package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/JakeKoks/aicomics/internal/core/domain"
	"github.com/JakeKoks/aicomics/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// MediaService implements the placeholder media catalog: metadata CRUD with
// ownership checks. File bytes are handled outside this service.
type MediaService struct {
	repo   ports.MediaRepository
	logger zerolog.Logger
}

func NewMediaService(repo ports.MediaRepository, logger zerolog.Logger) *MediaService {
	return &MediaService{repo: repo, logger: logger}
}

func (s *MediaService) Create(ctx context.Context, input ports.CreateMediaInput) (*domain.Media, error) {
	now := time.Now().UTC()
	media := &domain.Media{
		ID:               uuid.New(),
		UserID:           input.Caller.UserID,
		Filename:         input.Filename,
		OriginalFilename: input.OriginalFilename,
		MimeType:         input.MimeType,
		MediaType:        domain.MediaType(input.MediaType),
		FileSize:         input.FileSize,
		Tags:             input.Tags,
		IsPublic:         input.IsPublic,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, media); err != nil {
		return nil, err
	}

	s.logger.Info().Str("media_id", media.ID.String()).Int64("user_id", media.UserID).Msg("media created")
	return media, nil
}

// Get returns the item when the caller owns it, it is public, or the caller
// is Admin or above.
func (s *MediaService) Get(ctx context.Context, caller ports.Identity, id uuid.UUID) (*domain.Media, error) {
	media, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if media.UserID != caller.UserID && !media.IsPublic && !caller.Role.AtLeast(domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}
	return media, nil
}

func (s *MediaService) List(ctx context.Context, input ports.ListMediaInput) (*ports.ListMediaResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	filter := ports.ListMediaFilter{
		UserID:    input.Caller.UserID,
		MediaType: input.MediaType,
		Page:      page,
		Limit:     limit,
	}
	// Admins see the whole catalog.
	if input.Caller.Role.AtLeast(domain.RoleAdmin) {
		filter.UserID = 0
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListMediaResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *MediaService) Update(ctx context.Context, input ports.UpdateMediaInput) (*domain.Media, error) {
	media, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if media.UserID != input.Caller.UserID && !input.Caller.Role.AtLeast(domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}

	if input.Tags != nil {
		media.Tags = input.Tags
	}
	if input.IsPublic != nil {
		media.IsPublic = *input.IsPublic
	}
	media.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, media); err != nil {
		return nil, err
	}
	return media, nil
}

func (s *MediaService) Delete(ctx context.Context, caller ports.Identity, id uuid.UUID) error {
	media, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if media.UserID != caller.UserID && !caller.Role.AtLeast(domain.RoleAdmin) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("media_id", id.String()).Int64("deleted_by", caller.UserID).Msg("media deleted")
	return nil
}

func (s *MediaService) StatsForUser(ctx context.Context, userID int64) (*domain.MediaStats, error) {
	return s.repo.StatsForUser(ctx, userID)
}
