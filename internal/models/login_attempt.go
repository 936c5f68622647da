package models

import "time"

// LoginAttemptDB is an append-only audit row backing the login rate limiter.
// Rows are never mutated, only pruned by the retention cleanup.
type LoginAttemptDB struct {
	ID          int64     `json:"id" db:"id"`
	IPAddress   string    `json:"ip_address" db:"ip_address"`
	Email       string    `json:"email" db:"email"`
	Success     bool      `json:"success" db:"success"`
	UserAgent   string    `json:"user_agent" db:"user_agent"`
	AttemptedAt time.Time `json:"attempted_at" db:"attempted_at"`
}
