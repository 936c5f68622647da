package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/canchaleconte/cancha-api/internal/logger"
	"github.com/canchaleconte/cancha-api/internal/models"
)

type GameReadRepository struct {
	db *sqlx.DB
}

func NewGameReadRepository(db *sqlx.DB) *GameReadRepository {
	return &GameReadRepository{db: db}
}

// GetByShareToken resolves a game by its public share token, or nil when no
// game matches. The match is exact.
func (r *GameReadRepository) GetByShareToken(ctx context.Context, shareToken string) (*models.GameDB, error) {
	const query = `
		SELECT game_id, title, game_date, min_players, max_players, status, share_token, team_a_name, team_b_name, created_at, updated_at
		FROM games
		WHERE share_token = $1
		LIMIT 1
	`

	var game models.GameDB
	err := r.db.GetContext(ctx, &game, query, shareToken)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{shareToken},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetByID returns the game with the given ID, or nil when it does not exist.
func (r *GameReadRepository) GetByID(ctx context.Context, gameID uuid.UUID) (*models.GameDB, error) {
	const query = `
		SELECT game_id, title, game_date, min_players, max_players, status, share_token, team_a_name, team_b_name, created_at, updated_at
		FROM games
		WHERE game_id = $1
		LIMIT 1
	`

	var game models.GameDB
	err := r.db.GetContext(ctx, &game, query, gameID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// ListWithCounts returns all games newest first with their active
// registration counts.
func (r *GameReadRepository) ListWithCounts(ctx context.Context) ([]models.GameSummary, error) {
	const query = `
		SELECT g.game_id, g.title, g.game_date, g.min_players, g.max_players, g.status, g.share_token, g.team_a_name, g.team_b_name, g.created_at, g.updated_at,
		       COUNT(r.registration_id) FILTER (WHERE r.cancelled_at IS NULL) AS registered_count
		FROM games g
		LEFT JOIN game_registrations r ON r.game_id = g.game_id
		GROUP BY g.game_id
		ORDER BY g.game_date DESC
	`

	var games []models.GameSummary
	err := r.db.SelectContext(ctx, &games, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(games),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return games, nil
}

type GameWriteRepository struct {
	db *sqlx.DB
}

func NewGameWriteRepository(db *sqlx.DB) *GameWriteRepository {
	return &GameWriteRepository{db: db}
}

// Save inserts a new game. A share-token collision surfaces as
// ErrDuplicateKey; the caller mints a fresh token and retries.
func (r *GameWriteRepository) Save(ctx context.Context, g *models.GameDB) error {
	query := `
		INSERT INTO games (game_id, title, game_date, min_players, max_players, status, share_token, team_a_name, team_b_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	args := []any{g.GameID, g.Title, g.GameDate, g.MinPlayers, g.MaxPlayers, g.Status, g.ShareToken, g.TeamAName, g.TeamBName}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{g.GameID, g.Title, g.GameDate, g.Status},
		"error", err,
	)

	if isUniqueViolation(err) {
		return ErrDuplicateKey
	}
	return err
}
