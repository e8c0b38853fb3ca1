package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/JakeKoks/aicomics/internal/api/response"
	"github.com/JakeKoks/aicomics/internal/core/domain"
	"github.com/JakeKoks/aicomics/internal/core/ports"
)

// stubAuthService serves canned sessions keyed by token and records which
// service methods the middleware reached for.
type stubAuthService struct {
	sessions      map[string]*domain.Session
	users         map[int64]*domain.User
	validateCalls int
	refreshCalls  int
}

func newStubAuthService() *stubAuthService {
	return &stubAuthService{
		sessions: make(map[string]*domain.Session),
		users:    make(map[int64]*domain.User),
	}
}

func (s *stubAuthService) addSession(token string, userID int64, role domain.Role) *domain.Session {
	now := time.Now().UTC()
	sess := &domain.Session{
		ID:             token,
		UserID:         userID,
		Username:       "tester",
		Role:           role,
		CreatedAt:      now,
		ExpiresAt:      now.Add(time.Hour),
		LastActivityAt: now,
	}
	s.sessions[token] = sess
	s.users[userID] = &domain.User{ID: userID, Username: "tester", Role: role, IsActive: true}
	return sess
}

func (s *stubAuthService) Register(context.Context, ports.RegisterInput) (*domain.User, *domain.Session, error) {
	panic("not used")
}

func (s *stubAuthService) Login(context.Context, string, string) (*domain.User, *domain.Session, error) {
	panic("not used")
}

func (s *stubAuthService) Logout(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func (s *stubAuthService) ValidateSession(_ context.Context, sessionID string) (*domain.Session, error) {
	s.validateCalls++
	return s.sessions[sessionID], nil
}

func (s *stubAuthService) RefreshStatus(_ context.Context, sessionID string) (*domain.User, *domain.Session, error) {
	s.refreshCalls++
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil, nil
	}
	user, ok := s.users[sess.UserID]
	if !ok || !user.IsActive {
		delete(s.sessions, sessionID)
		return nil, nil, nil
	}
	sess.Role = user.Role
	return user, sess, nil
}

func (s *stubAuthService) Authorize(ctx context.Context, session *domain.Session, min domain.Role) (domain.Role, error) {
	if session == nil {
		return 0, domain.ErrAuthRequired
	}
	role := session.Role
	if min >= domain.RoleCreator {
		_, fresh, err := s.RefreshStatus(ctx, session.ID)
		if err != nil {
			return 0, err
		}
		if fresh == nil {
			return 0, domain.ErrAuthRequired
		}
		role = fresh.Role
	}
	if !role.AtLeast(min) {
		return role, domain.ErrForbidden
	}
	return role, nil
}

var testCookie = CookieConfig{Name: "aicomics.sid", TTL: time.Hour}

func performRequest(t *testing.T, mw echo.MiddlewareFunc, token string, handler echo.HandlerFunc) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie.Name, Value: token})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := mw(handler)(c); err != nil {
		t.Fatalf("middleware chain errored: %v", err)
	}
	return rec, c
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestSession_NoCookiePassesThrough(t *testing.T) {
	auth := newStubAuthService()
	var seen *domain.Session

	_, _ = performRequest(t, Session(auth, testCookie), "", func(c echo.Context) error {
		seen = CurrentSession(c)
		return c.NoContent(http.StatusOK)
	})

	if seen != nil {
		t.Fatalf("expected no identity without a cookie, got %+v", seen)
	}
	if auth.validateCalls != 0 {
		t.Fatalf("expected no store lookup without a cookie, got %d", auth.validateCalls)
	}
}

func TestSession_ValidCookieAttachesIdentity(t *testing.T) {
	auth := newStubAuthService()
	auth.addSession("tok1", 7, domain.RoleUser)
	var seen *domain.Session

	rec, _ := performRequest(t, Session(auth, testCookie), "tok1", func(c echo.Context) error {
		seen = CurrentSession(c)
		return c.NoContent(http.StatusOK)
	})

	if seen == nil || seen.UserID != 7 {
		t.Fatalf("expected identity for user 7, got %+v", seen)
	}
	ck := findCookie(rec, testCookie.Name)
	if ck == nil || ck.Value != "tok1" || ck.MaxAge <= 0 {
		t.Fatalf("expected re-issued session cookie, got %+v", ck)
	}
	if !ck.HttpOnly || ck.SameSite != http.SameSiteStrictMode {
		t.Fatalf("cookie must be httpOnly and SameSite=Strict, got %+v", ck)
	}
}

func TestSession_DeadCookieCleared(t *testing.T) {
	auth := newStubAuthService()
	var seen *domain.Session

	rec, _ := performRequest(t, Session(auth, testCookie), "expired", func(c echo.Context) error {
		seen = CurrentSession(c)
		return c.NoContent(http.StatusOK)
	})

	if seen != nil {
		t.Fatalf("expected no identity for a dead session, got %+v", seen)
	}
	ck := findCookie(rec, testCookie.Name)
	if ck == nil || ck.MaxAge != -1 {
		t.Fatalf("expected the dead cookie to be cleared, got %+v", ck)
	}
}

func TestRequireAuth(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	// Without an identity: 401 envelope with AUTH_REQUIRED.
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := RequireAuth(next)(c); err != nil {
		t.Fatalf("RequireAuth errored: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var env response.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Success || env.Code != response.CodeAuthRequired {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	// With an identity: request passes.
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil), rec)
	c.Set(sessionContextKey, &domain.Session{ID: "tok", UserID: 1, Role: domain.RoleUser})
	if err := RequireAuth(next)(c); err != nil {
		t.Fatalf("RequireAuth errored: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with identity, got %d", rec.Code)
	}
}
