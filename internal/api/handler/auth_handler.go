package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/JakeKoks/aicomics/internal/api/metrics"
	"github.com/JakeKoks/aicomics/internal/api/middleware"
	"github.com/JakeKoks/aicomics/internal/api/response"
	"github.com/JakeKoks/aicomics/internal/core/domain"
	"github.com/JakeKoks/aicomics/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	cookie      middleware.CookieConfig
}

func NewAuthHandler(authService ports.AuthService, cookie middleware.CookieConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

// Register creates a new user account and logs it in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      409   {object}  response.Envelope
// @Failure      500   {object}  response.Envelope
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, 400, "Invalid payload", response.CodeValidationError)
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("validation_error").Inc()
		return err
	}

	user, sess, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registerResult(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	metrics.SessionsActive.Inc()
	h.cookie.Issue(c, sess.ID)
	return response.Created(c, "User registered successfully", userPayload{User: user})
}

// Login authenticates by username or email and establishes a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  response.Envelope
// @Failure      401   {object}  response.Envelope
// @Failure      403   {object}  response.Envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, 400, "Invalid payload", response.CodeValidationError)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, sess, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.SessionsActive.Inc()
	h.cookie.Issue(c, sess.ID)
	return response.OKMessage(c, "Login successful", userPayload{User: user})
}

// Logout destroys the current session. Idempotent: a missing or already-dead
// session still answers 200, and the cookie is cleared either way.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := h.cookie.Token(c)
	h.cookie.Clear(c)

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	if middleware.CurrentSession(c) != nil {
		metrics.SessionsActive.Dec()
	}
	return response.OKMessage(c, "Logout successful", nil)
}

// Me returns the identity bound to the current session without touching the
// credential store. Unauthenticated callers get authenticated:false, not 401.
//
// @Summary      Current session identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		return response.OK(c, mePayload{Authenticated: false})
	}
	return response.OK(c, mePayload{
		Authenticated: true,
		User:          &sessionUser{ID: sess.UserID, Username: sess.Username, Role: sess.Role},
	})
}

// Status is the strong-freshness check: it re-reads the user record and
// reports authenticated:false (destroying the session) when the user is gone
// or deactivated.
//
// @Summary      Authentication status
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /api/auth/status [get]
func (h *AuthHandler) Status(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		return response.OK(c, statusPayload{Authenticated: false})
	}

	user, fresh, err := h.authService.RefreshStatus(c.Request().Context(), sess.ID)
	if err != nil {
		return err
	}
	if fresh == nil {
		metrics.SessionsActive.Dec()
		h.cookie.Clear(c)
		return response.OK(c, statusPayload{Authenticated: false})
	}
	return response.OK(c, statusPayload{Authenticated: true, User: user})
}

func registerResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return "user_exists"
	default:
		return "error"
	}
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrAccountDisabled):
		return "account_disabled"
	default:
		return "error"
	}
}
