package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment statuses for a registration.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// RegistrationDB represents a friend's registration for a game. The
// RegistrationToken is the sole credential for self-service management and
// must only ever be matched exactly.
type RegistrationDB struct {
	RegistrationID     uuid.UUID  `json:"id" db:"registration_id"`
	GameID             uuid.UUID  `json:"game_id" db:"game_id"`
	PlayerName         string     `json:"player_name" db:"player_name"`
	PlayerPhone        string     `json:"player_phone" db:"player_phone"`
	PaymentStatus      string     `json:"payment_status" db:"payment_status"`
	TeamAssignment     *string    `json:"team_assignment" db:"team_assignment"`
	RegistrationToken  string     `json:"-" db:"registration_token"`
	CancelledAt        *time.Time `json:"cancelled_at" db:"cancelled_at"`
	CancellationReason *string    `json:"cancellation_reason" db:"cancellation_reason"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`
}

// IsCancelled reports whether the registration has been cancelled.
func (r *RegistrationDB) IsCancelled() bool {
	return r.CancelledAt != nil
}

// RegistrationDetails is the minimized self-service projection returned for a
// registration token lookup. It deliberately omits other players' data and
// internal identifiers.
type RegistrationDetails struct {
	PlayerName    string     `json:"player_name"`
	PaymentStatus string     `json:"payment_status"`
	GameTitle     string     `json:"game_title"`
	GameDate      time.Time  `json:"game_date"`
	Cancelled     bool       `json:"cancelled"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
}

// RefundInfo describes refund eligibility computed at cancellation time.
type RefundInfo struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason"`
}
