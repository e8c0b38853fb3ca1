package ports

import (
	"context"

	"github.com/JakeKoks/aicomics/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
//
// Uniqueness of username and email is ultimately enforced by the store's
// constraints: Create must return domain.ErrUserExists on a uniqueness
// violation so two racing registrations resolve to exactly one winner.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByIdentifier looks a user up by exact username or normalized email
	// in a single query. Returns domain.ErrUserNotFound when there is no match.
	FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// ExistsByUsernameOrEmail reports whether either value is already taken.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}
