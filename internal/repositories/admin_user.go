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

type AdminUserReadRepository struct {
	db *sqlx.DB
}

func NewAdminUserReadRepository(db *sqlx.DB) *AdminUserReadRepository {
	return &AdminUserReadRepository{db: db}
}

// GetByEmail returns the admin user with the given email, or nil when no such
// user exists.
func (r *AdminUserReadRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUserDB, error) {
	const query = `
		SELECT user_id, email, password_hash, name, role, is_active, created_at, updated_at
		FROM admin_users
		WHERE email = $1
		LIMIT 1
	`

	var user models.AdminUserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the admin user with the given ID, or nil when no such user
// exists.
func (r *AdminUserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.AdminUserDB, error) {
	const query = `
		SELECT user_id, email, password_hash, name, role, is_active, created_at, updated_at
		FROM admin_users
		WHERE user_id = $1
		LIMIT 1
	`

	var user models.AdminUserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type AdminUserWriteRepository struct {
	db *sqlx.DB
}

func NewAdminUserWriteRepository(db *sqlx.DB) *AdminUserWriteRepository {
	return &AdminUserWriteRepository{db: db}
}

// Save upserts an admin user by email. Used by the seeding command; admins
// are never deleted, so the upsert also reactivates the account.
func (r *AdminUserWriteRepository) Save(ctx context.Context, email, passwordHash, name, role string) error {
	query := `
		INSERT INTO admin_users (user_id, email, password_hash, name, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    name = EXCLUDED.name,
		    role = EXCLUDED.role,
		    is_active = TRUE,
		    updated_at = NOW()
	`
	args := []any{uuid.New(), email, passwordHash, name, role}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, name, role},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
