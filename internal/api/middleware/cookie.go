package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieConfig describes how the session cookie is issued. The cookie carries
// only the opaque session token; everything else lives server-side.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Issue writes the session cookie. Called on login and registration, and on
// every validated request to implement rolling renewal.
func (cc CookieConfig) Issue(c echo.Context, sessionID string) {
	c.SetCookie(&http.Cookie{
		Name:     cc.Name,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(cc.TTL.Seconds()),
		HttpOnly: true,
		Secure:   cc.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Clear expires the session cookie immediately.
func (cc CookieConfig) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     cc.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cc.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Token extracts the raw session token from the request, or "" when the
// cookie is absent.
func (cc CookieConfig) Token(c echo.Context) string {
	cookie, err := c.Cookie(cc.Name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
