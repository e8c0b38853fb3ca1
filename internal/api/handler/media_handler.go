package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/JakeKoks/aicomics/internal/api/metrics"
	"github.com/JakeKoks/aicomics/internal/api/middleware"
	"github.com/JakeKoks/aicomics/internal/api/response"
	"github.com/JakeKoks/aicomics/internal/core/domain"
	"github.com/JakeKoks/aicomics/internal/core/ports"
)

type MediaHandler struct {
	mediaService ports.MediaService
}

func NewMediaHandler(mediaService ports.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func callerIdentity(c echo.Context) ports.Identity {
	sess := middleware.CurrentSession(c)
	return ports.Identity{UserID: sess.UserID, Role: sess.Role}
}

// List returns a page of the caller's media. Admins see the whole catalog.
//
// @Summary      List media
// @Tags         media
// @Produce      json
// @Param        page   query     int     false  "Page (1-based)"
// @Param        limit  query     int     false  "Page size (max 100)"
// @Param        type   query     string  false  "Filter by media type"
// @Success      200    {object}  response.Envelope
// @Router       /api/media [get]
func (h *MediaHandler) List(c echo.Context) error {
	var q listMediaQuery
	if err := c.Bind(&q); err != nil {
		return response.Fail(c, 400, "Invalid query", response.CodeValidationError)
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	result, err := h.mediaService.List(c.Request().Context(), ports.ListMediaInput{
		Caller:    callerIdentity(c),
		MediaType: q.Type,
		Page:      q.Page,
		Limit:     q.Limit,
	})
	if err != nil {
		return err
	}
	return response.OK(c, result)
}

// Get returns a single media item, subject to visibility rules.
//
// @Summary      Get media item
// @Tags         media
// @Produce      json
// @Param        id   path      string  true  "Media ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/media/{id} [get]
func (h *MediaHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domain.NewValidationError("id", "must be a valid UUID")
	}

	media, err := h.mediaService.Get(c.Request().Context(), callerIdentity(c), id)
	if err != nil {
		return err
	}
	return response.OK(c, media)
}

// Create registers a media catalog entry. File upload is handled elsewhere;
// this endpoint records metadata only.
//
// @Summary      Create media entry
// @Tags         media
// @Accept       json
// @Produce      json
// @Param        body  body      createMediaRequest  true  "Media metadata"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Router       /api/media [post]
func (h *MediaHandler) Create(c echo.Context) error {
	var req createMediaRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, 400, "Invalid payload", response.CodeValidationError)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	media, err := h.mediaService.Create(c.Request().Context(), ports.CreateMediaInput{
		Caller:           callerIdentity(c),
		Filename:         req.Filename,
		OriginalFilename: req.OriginalFilename,
		MimeType:         req.MimeType,
		MediaType:        req.MediaType,
		FileSize:         req.FileSize,
		Tags:             req.Tags,
		IsPublic:         req.IsPublic,
	})
	if err != nil {
		return err
	}

	metrics.MediaItemsTotal.WithLabelValues("create").Inc()
	return response.Created(c, "Media created", media)
}

// Update changes tags and visibility of an owned item.
//
// @Summary      Update media entry
// @Tags         media
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Media ID"
// @Param        body  body      updateMediaRequest  true  "Mutable fields"
// @Success      200   {object}  response.Envelope
// @Failure      403   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Router       /api/media/{id} [put]
func (h *MediaHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domain.NewValidationError("id", "must be a valid UUID")
	}

	var req updateMediaRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, 400, "Invalid payload", response.CodeValidationError)
	}

	media, err := h.mediaService.Update(c.Request().Context(), ports.UpdateMediaInput{
		Caller:   callerIdentity(c),
		ID:       id,
		Tags:     req.Tags,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		return err
	}

	metrics.MediaItemsTotal.WithLabelValues("update").Inc()
	return response.OK(c, media)
}

// Delete removes an owned item (or any item, for admins).
//
// @Summary      Delete media entry
// @Tags         media
// @Produce      json
// @Param        id   path      string  true  "Media ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/media/{id} [delete]
func (h *MediaHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domain.NewValidationError("id", "must be a valid UUID")
	}

	if err := h.mediaService.Delete(c.Request().Context(), callerIdentity(c), id); err != nil {
		return err
	}

	metrics.MediaItemsTotal.WithLabelValues("delete").Inc()
	return response.OKMessage(c, "Media deleted", nil)
}
