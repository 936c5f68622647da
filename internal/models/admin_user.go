package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin roles.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// AdminUserDB represents an administrator record in the database.
// Admins are never deleted, only deactivated.
type AdminUserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`              // Primary key
	Email        string    `json:"email" db:"email"`             // Unique login email
	PasswordHash string    `json:"-" db:"password_hash"`         // bcrypt hash, never serialized
	Name         string    `json:"name" db:"name"`               // Display name
	Role         string    `json:"role" db:"role"`               // admin or viewer
	IsActive     bool      `json:"is_active" db:"is_active"`     // Soft-deactivation flag
	CreatedAt    time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}

// PublicUser is the projection of an admin user exposed to clients.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

// Public returns the client-safe projection of the user.
func (u *AdminUserDB) Public() PublicUser {
	return PublicUser{
		ID:    u.UserID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
