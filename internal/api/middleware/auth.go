package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/JakeKoks/aicomics/internal/api/metrics"
	"github.com/JakeKoks/aicomics/internal/api/response"
	"github.com/JakeKoks/aicomics/internal/core/domain"
	"github.com/JakeKoks/aicomics/internal/core/ports"
)

const sessionContextKey = "session"

// Session resolves the session cookie into a typed identity and attaches it
// to the request context. It never rejects: public endpoints run with no
// identity, and protected ones layer RequireAuth or RequireRole on top.
// A validated session gets its cookie re-issued (rolling renewal).
func Session(auth ports.AuthService, cookie CookieConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := cookie.Token(c)
			if token == "" {
				return next(c)
			}

			sess, err := auth.ValidateSession(c.Request().Context(), token)
			if err != nil {
				return err
			}
			if sess == nil {
				metrics.SessionValidationsTotal.WithLabelValues("miss").Inc()
				cookie.Clear(c)
				return next(c)
			}
			metrics.SessionValidationsTotal.WithLabelValues("hit").Inc()

			c.Set(sessionContextKey, sess)
			cookie.Issue(c, sess.ID)
			return next(c)
		}
	}
}

// CurrentSession returns the identity attached by Session, or nil.
func CurrentSession(c echo.Context) *domain.Session {
	sess, _ := c.Get(sessionContextKey).(*domain.Session)
	return sess
}

// RequireAuth short-circuits with 401 AUTH_REQUIRED when no identity is
// attached. Must run after Session.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentSession(c) == nil {
			return response.Fail(c, 401, "Authentication required", response.CodeAuthRequired)
		}
		return next(c)
	}
}
