package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/canchaleconte/cancha-api/internal/logger"
	"github.com/canchaleconte/cancha-api/internal/models"
)

type SessionReadRepository struct {
	db *sqlx.DB
}

func NewSessionReadRepository(db *sqlx.DB) *SessionReadRepository {
	return &SessionReadRepository{db: db}
}

// GetByID returns the session with the given ID, or nil when it does not
// exist (destroyed or never created).
func (r *SessionReadRepository) GetByID(ctx context.Context, sessionID uuid.UUID) (*models.SessionDB, error) {
	const query = `
		SELECT session_id, user_id, expires_at, remember_me, created_ip, created_user_agent, created_at, updated_at
		FROM sessions
		WHERE session_id = $1
		LIMIT 1
	`

	var session models.SessionDB
	err := r.db.GetContext(ctx, &session, query, sessionID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{sessionID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

type SessionWriteRepository struct {
	db *sqlx.DB
}

func NewSessionWriteRepository(db *sqlx.DB) *SessionWriteRepository {
	return &SessionWriteRepository{db: db}
}

// Save inserts a new session row.
func (r *SessionWriteRepository) Save(ctx context.Context, s *models.SessionDB) error {
	query := `
		INSERT INTO sessions (session_id, user_id, expires_at, remember_me, created_ip, created_user_agent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	args := []any{s.SessionID, s.UserID, s.ExpiresAt, s.RememberMe, s.CreatedIP, s.CreatedUA}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{s.SessionID, s.UserID, s.ExpiresAt, s.RememberMe},
		"error", err,
	)

	return err
}

// UpdateExpiry extends a session's expiry. Repeated calls with the same
// expiry are harmless.
func (r *SessionWriteRepository) UpdateExpiry(ctx context.Context, sessionID uuid.UUID, expiresAt time.Time) error {
	query := `
		UPDATE sessions
		SET expires_at = $2, updated_at = NOW()
		WHERE session_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, sessionID, expiresAt)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{sessionID, expiresAt},
		"error", err,
	)

	return err
}

// Delete removes a session row. Missing rows are not an error so logout is
// idempotent.
func (r *SessionWriteRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	query := `DELETE FROM sessions WHERE session_id = $1`

	_, err := r.db.ExecContext(ctx, query, sessionID)

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{sessionID},
		"error", err,
	)

	return err
}

// DeleteExpired purges sessions past their expiry and returns the number
// removed.
func (r *SessionWriteRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at < NOW()`

	res, err := r.db.ExecContext(ctx, query)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", query,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
