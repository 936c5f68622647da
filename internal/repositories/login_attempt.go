package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/canchaleconte/cancha-api/internal/logger"
	"github.com/canchaleconte/cancha-api/internal/models"
)

type LoginAttemptReadRepository struct {
	db *sqlx.DB
}

func NewLoginAttemptReadRepository(db *sqlx.DB) *LoginAttemptReadRepository {
	return &LoginAttemptReadRepository{db: db}
}

// CountFailedSince returns the number of failed attempts from an IP within
// the sliding window starting at since.
func (r *LoginAttemptReadRepository) CountFailedSince(ctx context.Context, ip string, since time.Time) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM login_attempts
		WHERE ip_address = $1
		  AND success = FALSE
		  AND attempted_at >= $2
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, ip, since)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ip, since},
		"result", count,
		"error", err,
	)

	return count, err
}

type LoginAttemptWriteRepository struct {
	db *sqlx.DB
}

func NewLoginAttemptWriteRepository(db *sqlx.DB) *LoginAttemptWriteRepository {
	return &LoginAttemptWriteRepository{db: db}
}

// Save appends an attempt row to the audit log.
func (r *LoginAttemptWriteRepository) Save(ctx context.Context, attempt *models.LoginAttemptDB) error {
	query := `
		INSERT INTO login_attempts (ip_address, email, success, user_agent, attempted_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	args := []any{attempt.IPAddress, attempt.Email, attempt.Success, attempt.UserAgent}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// DeleteOlderThan purges attempt rows older than the cutoff and returns the
// number removed.
func (r *LoginAttemptWriteRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM login_attempts WHERE attempted_at < $1`

	res, err := r.db.ExecContext(ctx, query, cutoff)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{cutoff},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
