package domain

import "time"

// Role is an ordinal privilege level. Higher values are strictly more
// privileged; authorization is a plain integer comparison, not a hierarchy
// graph.
type Role int

const (
	RoleGuest      Role = 1
	RoleUser       Role = 2
	RoleCreator    Role = 3
	RoleAdmin      Role = 4
	RoleSuperAdmin Role = 5
)

// AtLeast reports whether r grants access to an operation requiring min.
func (r Role) AtLeast(min Role) bool {
	return r >= min
}

// Valid reports whether r is one of the five defined ordinals.
func (r Role) Valid() bool {
	return r >= RoleGuest && r <= RoleSuperAdmin
}

func (r Role) String() string {
	switch r {
	case RoleGuest:
		return "guest"
	case RoleUser:
		return "user"
	case RoleCreator:
		return "creator"
	case RoleAdmin:
		return "admin"
	case RoleSuperAdmin:
		return "super_admin"
	default:
		return "unknown"
	}
}

// User models a registered account. The password hash never leaves the
// credential store boundary: it is excluded from JSON serialization.
type User struct {
	ID           int64      `json:"id" db:"id"`
	Username     string     `json:"username" db:"username"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	FullName     string     `json:"fullName" db:"full_name"`
	Role         Role       `json:"role" db:"role"`
	IsActive     bool       `json:"isActive" db:"is_active"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	LastLogin    *time.Time `json:"lastLogin,omitempty" db:"last_login"`
}
