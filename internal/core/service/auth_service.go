package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/JakeKoks/aicomics/internal/core/domain"
	"github.com/JakeKoks/aicomics/internal/core/ports"
)

const (
	defaultSessionTTL = 7 * 24 * time.Hour
	defaultBcryptCost = 12
	sessionIDBytes    = 32
)

// AuthConfig tunes the auth service. Zero values fall back to the defaults
// above.
type AuthConfig struct {
	SessionTTL time.Duration
	BcryptCost int
}

// AuthService implements registration, login, and session lifecycle on top of
// an injected credential store and session store. It holds no mutable state
// of its own: every validation re-reads the session store.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	sessionTTL time.Duration
	bcryptCost int
	// dummyHash absorbs a bcrypt compare when the login identifier is
	// unknown, keeping that path in the same timing class as a wrong
	// password.
	dummyHash []byte
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, cfg AuthConfig, logger zerolog.Logger) *AuthService {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		cfg.BcryptCost = defaultBcryptCost
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("aicomics-unknown-identifier-pad"), cfg.BcryptCost)
	if err != nil {
		// bcrypt only fails on an out-of-range cost, which the clamp above
		// rules out.
		panic(fmt.Sprintf("auth: generate dummy hash: %v", err))
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: cfg.SessionTTL,
		bcryptCost: cfg.BcryptCost,
		dummyHash:  dummy,
		logger:     logger,
	}
}

// Register creates the account and logs it in. Field-level validation happens
// at the request boundary; this layer normalizes, checks uniqueness, and
// hashes. The store's unique constraints remain the race arbiter: a
// concurrent duplicate that slips past the pre-check still surfaces as
// domain.ErrUserExists from Create.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, *domain.Session, error) {
	email := NormalizeEmail(input.Email)

	taken, err := s.users.ExistsByUsernameOrEmail(ctx, input.Username, email)
	if err != nil {
		return nil, nil, err
	}
	if taken {
		return nil, nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Username:     input.Username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Role:         domain.RoleUser,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, nil, err
	}

	sess, err := s.createSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Str("username", user.Username).Int64("user_id", user.ID).Msg("user registered")
	return user, sess, nil
}

// Login authenticates by username or email in a single lookup. The password
// is verified before the active flag is checked, so ACCOUNT_DISABLED is only
// revealed to callers who proved knowledge of the password.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*domain.User, *domain.Session, error) {
	if strings.Contains(identifier, "@") {
		identifier = NormalizeEmail(identifier)
	}

	user, err := s.users.FindByIdentifier(ctx, identifier)
	if errors.Is(err, domain.ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, nil, domain.ErrAccountDisabled
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, nil, err
	}
	now := time.Now().UTC()
	user.LastLogin = &now

	sess, err := s.createSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Str("username", user.Username).Int64("user_id", user.ID).Msg("user logged in")
	return user, sess, nil
}

// Logout destroys the session. It is idempotent: empty, unknown, and
// already-destroyed IDs all succeed.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// ValidateSession is the cheap per-request path: one store read plus the
// sliding renewal write. The user record behind the session is not
// re-checked here; RefreshStatus does that.
func (s *AuthService) ValidateSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, nil
	}
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}

	now := time.Now().UTC()
	sess.LastActivityAt = now
	sess.ExpiresAt = now.Add(s.sessionTTL)
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// RefreshStatus re-reads the user record and fails closed: a missing or
// deactivated user invalidates the session immediately. A role snapshot that
// drifted from the live record is re-synced on the way out.
func (s *AuthService) RefreshStatus(ctx context.Context, sessionID string) (*domain.User, *domain.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if sess == nil {
		return nil, nil, nil
	}

	user, err := s.users.FindByID(ctx, sess.UserID)
	if errors.Is(err, domain.ErrUserNotFound) || (err == nil && !user.IsActive) {
		s.logger.Warn().Int64("user_id", sess.UserID).Msg("session invalidated: user missing or disabled")
		if derr := s.sessions.Delete(ctx, sessionID); derr != nil {
			return nil, nil, derr
		}
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	if sess.Role != user.Role {
		sess.Role = user.Role
		if err := s.sessions.Save(ctx, sess); err != nil {
			return nil, nil, err
		}
	}
	return user, sess, nil
}

// Authorize grants access iff the effective role is at least min. Checks at
// Creator level and above use the live role via RefreshStatus, so a demotion
// takes effect on the next privileged request rather than the next login;
// plain authenticated access trusts the login-time snapshot.
func (s *AuthService) Authorize(ctx context.Context, session *domain.Session, min domain.Role) (domain.Role, error) {
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

func (s *AuthService) createSession(ctx context.Context, user *domain.User) (*domain.Session, error) {
	id, err := newSessionID()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}

	now := time.Now().UTC()
	sess := &domain.Session{
		ID:             id,
		UserID:         user.ID,
		Username:       user.Username,
		Role:           user.Role,
		CreatedAt:      now,
		ExpiresAt:      now.Add(s.sessionTTL),
		LastActivityAt: now,
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// newSessionID returns 256 bits of randomness as a compact base64url token.
func newSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// NormalizeEmail lowercases and trims an email address so lookups and the
// unique index agree on a single canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
