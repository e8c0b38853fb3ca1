package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/JakeKoks/aicomics/internal/api/response"
	"github.com/JakeKoks/aicomics/internal/core/domain"
	"github.com/JakeKoks/aicomics/internal/core/ports"
)

// roleDetails is the 403 payload. Exposing required vs. current ordinals is a
// deliberate disclosure kept from the original API contract.
type roleDetails struct {
	Required int `json:"required"`
	Current  int `json:"current"`
}

// RequireRole enforces a minimum ordinal role. The grant rule is a strict
// integer comparison: role >= min. Checks at Creator level and above go
// through the auth service so they see the live role rather than the
// login-time snapshot. Must run after Session.
func RequireRole(auth ports.AuthService, min domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := CurrentSession(c)
			if sess == nil {
				return response.Fail(c, 401, "Authentication required", response.CodeAuthRequired)
			}

			role, err := auth.Authorize(c.Request().Context(), sess, min)
			switch {
			case errors.Is(err, domain.ErrAuthRequired):
				return response.Fail(c, 401, "Authentication required", response.CodeAuthRequired)
			case errors.Is(err, domain.ErrForbidden):
				return response.FailDetails(c, 403, "Insufficient permissions",
					response.CodeInsufficientPerms, roleDetails{Required: int(min), Current: int(role)})
			case err != nil:
				return err
			}

			return next(c)
		}
	}
}
