package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/JakeKoks/aicomics/internal/core/domain"
	"github.com/JakeKoks/aicomics/internal/core/ports"
)

// MediaRepository persists media catalog entries in Postgres.
type MediaRepository struct {
	db *sqlx.DB
}

func NewMediaRepository(db *sqlx.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// mediaRow mirrors the media table; tags need pq.StringArray for scanning.
type mediaRow struct {
	ID               uuid.UUID      `db:"id"`
	UserID           int64          `db:"user_id"`
	Filename         string         `db:"filename"`
	OriginalFilename string         `db:"original_filename"`
	MimeType         string         `db:"mime_type"`
	MediaType        string         `db:"media_type"`
	FileSize         int64          `db:"file_size"`
	Tags             pq.StringArray `db:"tags"`
	IsPublic         bool           `db:"is_public"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

func (m mediaRow) toDomain() *domain.Media {
	return &domain.Media{
		ID:               m.ID,
		UserID:           m.UserID,
		Filename:         m.Filename,
		OriginalFilename: m.OriginalFilename,
		MimeType:         m.MimeType,
		MediaType:        domain.MediaType(m.MediaType),
		FileSize:         m.FileSize,
		Tags:             m.Tags,
		IsPublic:         m.IsPublic,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

const mediaColumns = "id, user_id, filename, original_filename, mime_type, media_type, file_size, tags, is_public, created_at, updated_at"

func (r *MediaRepository) Create(ctx context.Context, media *domain.Media) error {
	const query = `
		INSERT INTO media (` + mediaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		media.ID, media.UserID, media.Filename, media.OriginalFilename, media.MimeType,
		string(media.MediaType), media.FileSize, pq.StringArray(media.Tags), media.IsPublic,
		media.CreatedAt, media.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert media: %w", err)
	}
	return nil
}

func (r *MediaRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Media, error) {
	const query = `SELECT ` + mediaColumns + ` FROM media WHERE id = $1`

	var row mediaRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMediaNotFound
		}
		return nil, fmt.Errorf("find media: %w", err)
	}
	return row.toDomain(), nil
}

func (r *MediaRepository) List(ctx context.Context, filter ports.ListMediaFilter) ([]*domain.Media, int64, error) {
	where := "WHERE 1=1"
	args := []any{}

	if filter.UserID != 0 {
		args = append(args, filter.UserID)
		where += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if filter.MediaType != "" {
		args = append(args, filter.MediaType)
		where += fmt.Sprintf(" AND media_type = $%d", len(args))
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT count(*) FROM media "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count media: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(
		"SELECT %s FROM media %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		mediaColumns, where, len(args)-1, len(args))

	var rows []mediaRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list media: %w", err)
	}

	items := make([]*domain.Media, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDomain())
	}
	return items, total, nil
}

func (r *MediaRepository) Update(ctx context.Context, media *domain.Media) error {
	const query = `
		UPDATE media
		SET tags = $2, is_public = $3, updated_at = $4
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, media.ID, pq.StringArray(media.Tags), media.IsPublic, media.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update media: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrMediaNotFound
	}
	return nil
}

func (r *MediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrMediaNotFound
	}
	return nil
}

func (r *MediaRepository) StatsForUser(ctx context.Context, userID int64) (*domain.MediaStats, error) {
	const query = `
		SELECT count(*) AS count, coalesce(sum(file_size), 0) AS total_size
		FROM media
		WHERE user_id = $1`

	var stats struct {
		Count     int64 `db:"count"`
		TotalSize int64 `db:"total_size"`
	}
	if err := r.db.GetContext(ctx, &stats, query, userID); err != nil {
		return nil, fmt.Errorf("media stats: %w", err)
	}
	return &domain.MediaStats{Count: stats.Count, TotalSize: stats.TotalSize}, nil
}
