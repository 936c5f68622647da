package models

import (
	"time"

	"github.com/google/uuid"
)

// Game statuses. Transitions are largely time-derived: a game is joinable only
// while its status is open and its date is in the future.
const (
	GameStatusDraft      = "draft"
	GameStatusOpen       = "open"
	GameStatusClosed     = "closed"
	GameStatusInProgress = "in_progress"
	GameStatusCompleted  = "completed"
	GameStatusCancelled  = "cancelled"
)

// GameDB represents a game record in the database.
type GameDB struct {
	GameID     uuid.UUID `json:"id" db:"game_id"`
	Title      string    `json:"title" db:"title"`
	GameDate   time.Time `json:"game_date" db:"game_date"`
	MinPlayers int       `json:"min_players" db:"min_players"`
	MaxPlayers int       `json:"max_players" db:"max_players"`
	Status     string    `json:"status" db:"status"`
	ShareToken string    `json:"share_token" db:"share_token"` // Public, low-sensitivity link token
	TeamAName  string    `json:"team_a_name" db:"team_a_name"`
	TeamBName  string    `json:"team_b_name" db:"team_b_name"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// IsJoinable reports whether friends may still register for the game.
func (g *GameDB) IsJoinable(now time.Time) bool {
	return g.Status == GameStatusOpen && now.Before(g.GameDate)
}

// GameSummary is a game row with its active registration count, used by the
// admin listing.
type GameSummary struct {
	GameDB
	RegisteredCount int `json:"registered_count" db:"registered_count"`
}
