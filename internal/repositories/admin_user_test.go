package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func adminUserColumns() []string {
	return []string{"user_id", "email", "password_hash", "name", "role", "is_active", "created_at", "updated_at"}
}

func TestAdminUserReadRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdminUserReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM admin_users").
			WithArgs("santi@cancha.com").
			WillReturnRows(sqlmock.NewRows(adminUserColumns()).
				AddRow(userID, "santi@cancha.com", "hash", "Santiago", "admin", true, now, now))

		user, err := repo.GetByEmail(ctx, "santi@cancha.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, "admin", user.Role)
		assert.True(t, user.IsActive)
	})

	t.Run("not found returns nil without error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM admin_users").
			WithArgs("nobody@cancha.com").
			WillReturnRows(sqlmock.NewRows(adminUserColumns()))

		user, err := repo.GetByEmail(ctx, "nobody@cancha.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("storage error propagates", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM admin_users").
			WithArgs("santi@cancha.com").
			WillReturnError(errors.New("connection reset"))

		user, err := repo.GetByEmail(ctx, "santi@cancha.com")
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdminUserWriteRepository(db)
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO admin_users").
		WithArgs(sqlmock.AnyArg(), "santi@cancha.com", "hash", "Santiago", "admin").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(ctx, "santi@cancha.com", "hash", "Santiago", "admin")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
