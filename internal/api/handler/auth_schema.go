package handler

import (
	"time"

	"github.com/JakeKoks/aicomics/internal/core/domain"
)

// --- Request / Response types ---

type registerRequest struct {
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,userpassword"`
	FullName string `json:"fullName" validate:"required,min=2,max=100"`
}

type loginRequest struct {
	// Username accepts a username or an email address.
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userPayload struct {
	User *domain.User `json:"user"`
}

// sessionUser is the lightweight identity echoed by /me: exactly the session
// payload, no database read.
type sessionUser struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

type mePayload struct {
	Authenticated bool         `json:"authenticated"`
	User          *sessionUser `json:"user"`
}

type statusPayload struct {
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user"`
}

type dashboardUser struct {
	Username    string      `json:"username"`
	FullName    string      `json:"fullName"`
	Role        domain.Role `json:"role"`
	MemberSince time.Time   `json:"memberSince"`
	LastLogin   *time.Time  `json:"lastLogin,omitempty"`
}

type dashboardPayload struct {
	User  dashboardUser      `json:"user"`
	Stats *domain.MediaStats `json:"stats"`
}
