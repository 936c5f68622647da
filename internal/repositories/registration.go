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

type RegistrationReadRepository struct {
	db *sqlx.DB
}

func NewRegistrationReadRepository(db *sqlx.DB) *RegistrationReadRepository {
	return &RegistrationReadRepository{db: db}
}

// GetByToken resolves a registration by its management token, or nil when no
// registration matches. The token is the sole authorization factor for
// self-service access, so the match is an exact equality against the column.
func (r *RegistrationReadRepository) GetByToken(ctx context.Context, token string) (*models.RegistrationDB, error) {
	const query = `
		SELECT registration_id, game_id, player_name, player_phone, payment_status, team_assignment, registration_token, cancelled_at, cancellation_reason, created_at, updated_at
		FROM game_registrations
		WHERE registration_token = $1
		LIMIT 1
	`

	var reg models.RegistrationDB
	err := r.db.GetContext(ctx, &reg, query, token)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// GetActiveByPhone returns the non-cancelled registration for a phone number
// in a game, or nil when there is none.
func (r *RegistrationReadRepository) GetActiveByPhone(ctx context.Context, gameID uuid.UUID, phone string) (*models.RegistrationDB, error) {
	const query = `
		SELECT registration_id, game_id, player_name, player_phone, payment_status, team_assignment, registration_token, cancelled_at, cancellation_reason, created_at, updated_at
		FROM game_registrations
		WHERE game_id = $1
		  AND player_phone = $2
		  AND cancelled_at IS NULL
		LIMIT 1
	`

	var reg models.RegistrationDB
	err := r.db.GetContext(ctx, &reg, query, gameID, phone)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID, phone},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// ListByGame returns all registrations for a game, active first.
func (r *RegistrationReadRepository) ListByGame(ctx context.Context, gameID uuid.UUID) ([]models.RegistrationDB, error) {
	const query = `
		SELECT registration_id, game_id, player_name, player_phone, payment_status, team_assignment, registration_token, cancelled_at, cancellation_reason, created_at, updated_at
		FROM game_registrations
		WHERE game_id = $1
		ORDER BY cancelled_at IS NOT NULL, created_at
	`

	var regs []models.RegistrationDB
	err := r.db.SelectContext(ctx, &regs, query, gameID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID},
		"result", len(regs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return regs, nil
}

type RegistrationWriteRepository struct {
	db *sqlx.DB
}

func NewRegistrationWriteRepository(db *sqlx.DB) *RegistrationWriteRepository {
	return &RegistrationWriteRepository{db: db}
}

// ReserveSlot inserts a registration only if the game still has capacity.
// The game row is locked first, so concurrent reservations serialize on it
// and the count that follows sees every committed registration; two requests
// racing on the last slot cannot both insert. Returns ErrCapacityExceeded
// when the game is full and ErrDuplicateKey when the phone is already
// registered (partial unique index on
// (game_id, player_phone) WHERE cancelled_at IS NULL).
func (r *RegistrationWriteRepository) ReserveSlot(ctx context.Context, reg *models.RegistrationDB, maxPlayers int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const lockQuery = `SELECT max_players FROM games WHERE game_id = $1 FOR UPDATE`
	var lockedMax int
	if err := tx.GetContext(ctx, &lockedMax, lockQuery, reg.GameID); err != nil {
		return err
	}

	const countQuery = `
		SELECT COUNT(*) FROM game_registrations
		WHERE game_id = $1 AND cancelled_at IS NULL
	`
	var count int
	if err := tx.GetContext(ctx, &count, countQuery, reg.GameID); err != nil {
		return err
	}
	if count >= maxPlayers {
		return ErrCapacityExceeded
	}

	query := `
		INSERT INTO game_registrations (registration_id, game_id, player_name, player_phone, payment_status, registration_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	args := []any{reg.RegistrationID, reg.GameID, reg.PlayerName, reg.PlayerPhone, reg.PaymentStatus, reg.RegistrationToken}

	res, err := tx.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reg.RegistrationID, reg.GameID, reg.PlayerName, maxPlayers},
		"result", rowsAffected,
		"error", err,
	)

	if isUniqueViolation(err) {
		return ErrDuplicateKey
	}
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Cancel marks a registration cancelled with a reason. When refunded is set
// the payment status moves to refunded in the same statement.
func (r *RegistrationWriteRepository) Cancel(ctx context.Context, registrationID uuid.UUID, reason string, refunded bool) error {
	query := `
		UPDATE game_registrations
		SET cancelled_at = NOW(),
		    cancellation_reason = $2,
		    payment_status = CASE WHEN $3 THEN 'refunded' ELSE payment_status END,
		    updated_at = NOW()
		WHERE registration_id = $1
		  AND cancelled_at IS NULL
	`

	_, err := r.db.ExecContext(ctx, query, registrationID, reason, refunded)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{registrationID, reason, refunded},
		"error", err,
	)

	return err
}
