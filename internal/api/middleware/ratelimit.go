package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/JakeKoks/aicomics/internal/api/response"
)

const (
	authRateWindow = 15 * time.Minute
	authRateBurst  = 5
)

// AuthRateLimiter throttles credential endpoints to 5 attempts per 15-minute
// window per client IP, answering excess traffic with the standard envelope.
func AuthRateLimiter() echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Every(authRateWindow / authRateBurst),
		Burst:     authRateBurst,
		ExpiresIn: authRateWindow,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.Fail(c, 403, "Could not identify client", response.CodeRateLimited)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return response.Fail(c, 429, "Too many authentication attempts. Please try again later.",
				response.CodeRateLimited)
		},
	})
}
