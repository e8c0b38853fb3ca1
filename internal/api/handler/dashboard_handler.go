package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/JakeKoks/aicomics/internal/api/middleware"
	"github.com/JakeKoks/aicomics/internal/api/response"
	"github.com/JakeKoks/aicomics/internal/core/ports"
)

type DashboardHandler struct {
	authService  ports.AuthService
	mediaService ports.MediaService
}

func NewDashboardHandler(authService ports.AuthService, mediaService ports.MediaService) *DashboardHandler {
	return &DashboardHandler{authService: authService, mediaService: mediaService}
}

// Stats returns the current user's profile summary and media usage. Reads the
// user record fresh, so a deactivated account sees 401 here rather than
// stale data.
//
// @Summary      Dashboard statistics
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	user, fresh, err := h.authService.RefreshStatus(c.Request().Context(), sess.ID)
	if err != nil {
		return err
	}
	if fresh == nil {
		return response.Fail(c, 401, "Authentication required", response.CodeAuthRequired)
	}

	stats, err := h.mediaService.StatsForUser(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return response.OK(c, dashboardPayload{
		User: dashboardUser{
			Username:    user.Username,
			FullName:    user.FullName,
			Role:        user.Role,
			MemberSince: user.CreatedAt,
			LastLogin:   user.LastLogin,
		},
		Stats: stats,
	})
}
