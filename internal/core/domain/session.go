package domain

import "time"

// Session binds an opaque random token to an authenticated identity. The role
// is a snapshot taken at login time; privileged checks re-validate it against
// the live user record, plain authenticated access trusts the snapshot.
//
// Sessions are owned exclusively by the session store. Expiration is sliding:
// every validated request pushes ExpiresAt forward by the full session TTL.
type Session struct {
	ID             string    `json:"-"`
	UserID         int64     `json:"userId"`
	Username       string    `json:"username"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
	ExpiresAt      time.Time `json:"expiresAt"`
	LastActivityAt time.Time `json:"lastActivityAt"`
}
