package handler

// --- Request types for the media catalog ---

type createMediaRequest struct {
	Filename         string   `json:"filename"         validate:"required,min=1,max=255"`
	OriginalFilename string   `json:"originalFilename" validate:"omitempty,max=255"`
	MimeType         string   `json:"mimeType"         validate:"required"`
	MediaType        string   `json:"mediaType"        validate:"required,oneof=image comic video"`
	FileSize         int64    `json:"fileSize"         validate:"gte=0"`
	Tags             []string `json:"tags"`
	IsPublic         bool     `json:"isPublic"`
}

type updateMediaRequest struct {
	Tags     []string `json:"tags"`
	IsPublic *bool    `json:"isPublic"`
}

type listMediaQuery struct {
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
	Type  string `query:"type" validate:"omitempty,oneof=image comic video"`
}
