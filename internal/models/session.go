package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionDB represents a server-side session record. The client holds a signed
// token referencing SessionID; destroying the row invalidates the token even
// before its natural expiry.
type SessionDB struct {
	SessionID  uuid.UUID `json:"id" db:"session_id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	ExpiresAt  time.Time `json:"expires_at" db:"expires_at"`
	RememberMe bool      `json:"remember_me" db:"remember_me"`
	CreatedIP  string    `json:"-" db:"created_ip"`         // Audit only, not binding
	CreatedUA  string    `json:"-" db:"created_user_agent"` // Audit only, not binding
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// PublicSession is the projection of a session exposed to clients.
type PublicSession struct {
	ID        uuid.UUID `json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Public returns the client-safe projection of the session.
func (s *SessionDB) Public() PublicSession {
	return PublicSession{ID: s.SessionID, ExpiresAt: s.ExpiresAt}
}

// AuthContext carries the authenticated user and session injected into
// handlers by the auth middleware.
type AuthContext struct {
	User    *AdminUserDB
	Session *SessionDB
}

// RequestMeta captures per-request audit metadata.
type RequestMeta struct {
	IP        string
	UserAgent string
}
