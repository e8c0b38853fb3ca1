package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/JakeKoks/aicomics/internal/api/response"
	"github.com/JakeKoks/aicomics/internal/core/domain"
)

func performRBAC(t *testing.T, auth *stubAuthService, sess *domain.Session, min domain.Role) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/media", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sess != nil {
		c.Set(sessionContextKey, sess)
	}

	mw := RequireRole(auth, min)
	if err := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c); err != nil {
		t.Fatalf("RequireRole errored: %v", err)
	}
	return rec
}

func TestRequireRole_Grants(t *testing.T) {
	auth := newStubAuthService()
	sess := auth.addSession("tok", 1, domain.RoleCreator)

	rec := performRBAC(t, auth, sess, domain.RoleCreator)
	if rec.Code != http.StatusOK {
		t.Fatalf("creator hitting a creator gate: expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_InsufficientRole(t *testing.T) {
	auth := newStubAuthService()
	sess := auth.addSession("tok", 1, domain.RoleUser)

	rec := performRBAC(t, auth, sess, domain.RoleCreator)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	var env struct {
		Success bool   `json:"success"`
		Code    string `json:"code"`
		Details struct {
			Required int `json:"required"`
			Current  int `json:"current"`
		} `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Success || env.Code != response.CodeInsufficientPerms {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if env.Details.Required != int(domain.RoleCreator) || env.Details.Current != int(domain.RoleUser) {
		t.Fatalf("expected required=%d current=%d, got %+v", domain.RoleCreator, domain.RoleUser, env.Details)
	}
}

func TestRequireRole_NoSession(t *testing.T) {
	auth := newStubAuthService()

	rec := performRBAC(t, auth, nil, domain.RoleCreator)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var env response.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Code != response.CodeAuthRequired {
		t.Fatalf("expected AUTH_REQUIRED, got %q", env.Code)
	}
}

func TestRequireRole_PrivilegedCheckSeesLiveRole(t *testing.T) {
	auth := newStubAuthService()
	sess := auth.addSession("tok", 1, domain.RoleCreator)

	// Demote the live record while the snapshot still says Creator.
	auth.users[1].Role = domain.RoleUser

	rec := performRBAC(t, auth, sess, domain.RoleCreator)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("demoted user must lose privileged access: expected 403, got %d", rec.Code)
	}
	if auth.refreshCalls == 0 {
		t.Fatalf("privileged check must re-validate against the live user")
	}
}

func TestRequireRole_InvalidatedSessionIs401(t *testing.T) {
	auth := newStubAuthService()
	sess := auth.addSession("tok", 1, domain.RoleAdmin)
	auth.users[1].IsActive = false

	rec := performRBAC(t, auth, sess, domain.RoleAdmin)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("disabled user on a privileged gate: expected 401, got %d", rec.Code)
	}
}
