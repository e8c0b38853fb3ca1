package ports

import (
	"context"

	"github.com/JakeKoks/aicomics/internal/core/domain"
)

// RegisterInput carries the already-validated registration fields.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

// AuthService defines the authentication and authorization use cases.
type AuthService interface {
	// Register creates the account with role User and establishes a session
	// (auto-login). Duplicate username or email yields domain.ErrUserExists.
	Register(ctx context.Context, input RegisterInput) (*domain.User, *domain.Session, error)
	// Login authenticates by username or email. Unknown identifier and wrong
	// password both yield domain.ErrInvalidCredentials; a correct password on
	// a deactivated account yields domain.ErrAccountDisabled.
	Login(ctx context.Context, identifier, password string) (*domain.User, *domain.Session, error)
	// Logout destroys the session. Idempotent: unknown or empty IDs succeed.
	Logout(ctx context.Context, sessionID string) error
	// ValidateSession is the cheap per-request path: a single store lookup
	// with sliding renewal. Returns (nil, nil) for unknown sessions. The user
	// record is not re-checked here.
	ValidateSession(ctx context.Context, sessionID string) (*domain.Session, error)
	// RefreshStatus re-reads the user record behind the session. If the user
	// is gone or deactivated the session is destroyed and (nil, nil, nil) is
	// returned. A drifted role snapshot is re-synced to the live role.
	RefreshStatus(ctx context.Context, sessionID string) (*domain.User, *domain.Session, error)
	// Authorize returns the effective role and nil when the session grants
	// min, domain.ErrForbidden when it does not, and domain.ErrAuthRequired
	// when the session is absent or was invalidated by the freshness check.
	// Checks at Creator level and above re-validate against the live user.
	Authorize(ctx context.Context, session *domain.Session, min domain.Role) (domain.Role, error)
}
