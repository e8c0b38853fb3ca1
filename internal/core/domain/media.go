package domain

import (
	"time"

	"github.com/google/uuid"
)

// MediaType classifies a stored media item.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeComic MediaType = "comic"
	MediaTypeVideo MediaType = "video"
)

// Media is a metadata record for a generated or uploaded asset. File contents
// live outside this service; only the catalog entry is managed here.
type Media struct {
	ID               uuid.UUID `json:"id" db:"id"`
	UserID           int64     `json:"userId" db:"user_id"`
	Filename         string    `json:"filename" db:"filename"`
	OriginalFilename string    `json:"originalFilename" db:"original_filename"`
	MimeType         string    `json:"mimeType" db:"mime_type"`
	MediaType        MediaType `json:"mediaType" db:"media_type"`
	FileSize         int64     `json:"fileSize" db:"file_size"`
	Tags             []string  `json:"tags" db:"-"`
	IsPublic         bool      `json:"isPublic" db:"is_public"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}

// MediaStats aggregates a user's media usage for the dashboard.
type MediaStats struct {
	Count     int64 `json:"mediaFiles"`
	TotalSize int64 `json:"totalStorageUsed"`
}
