package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/JakeKoks/aicomics/internal/api/response"
	"github.com/JakeKoks/aicomics/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status and stable error code.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders every error in the uniform {success, error, code} envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			_ = response.FailDetails(c, http.StatusBadRequest, "Validation failed",
				response.CodeValidationError, ve.Fields)
			return
		}

		status, msg, code := resolveError(err, log, c)
		_ = response.Fail(c, status, msg, code)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Echo's own errors: bind failures, 404/405 from the router, etc.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound:
			return he.Code, "Endpoint not found", response.CodeNotFound
		case http.StatusMethodNotAllowed:
			return he.Code, "Method not allowed", response.CodeNotFound
		default:
			return he.Code, fmt.Sprintf("%v", he.Message), ""
		}
	}

	// Known domain errors map to deterministic status + code pairs. The
	// invalid-credentials message deliberately does not say whether the
	// identifier or the password was wrong.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials", response.CodeInvalidCreds
	case errors.Is(err, domain.ErrAccountDisabled):
		return http.StatusForbidden, "Account is disabled", response.CodeAccountDisabled
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "Username or email already exists", response.CodeUserExists
	case errors.Is(err, domain.ErrAuthRequired):
		return http.StatusUnauthorized, "Authentication required", response.CodeAuthRequired
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Insufficient permissions", response.CodeInsufficientPerms
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found", response.CodeNotFound
	case errors.Is(err, domain.ErrMediaNotFound):
		return http.StatusNotFound, "Media not found", response.CodeNotFound
	}

	// Unexpected error (store connectivity and the like): log the real
	// cause, return a generic 500.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error", response.CodeInternalError
}
