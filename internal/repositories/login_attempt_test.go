package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/canchaleconte/cancha-api/internal/models"
)

func TestLoginAttemptReadRepository_CountFailedSince(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLoginAttemptReadRepository(db)
	ctx := context.Background()

	since := time.Now().Add(-15 * time.Minute)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM login_attempts").
		WithArgs("10.0.0.1", since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountFailedSince(ctx, "10.0.0.1", since)
	assert.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginAttemptWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLoginAttemptWriteRepository(db)
	ctx := context.Background()

	attempt := &models.LoginAttemptDB{
		IPAddress: "10.0.0.1",
		Email:     "santi@cancha.com",
		Success:   false,
		UserAgent: "curl/8.0",
	}

	t.Run("ok", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO login_attempts").
			WithArgs(attempt.IPAddress, attempt.Email, attempt.Success, attempt.UserAgent).
			WillReturnResult(sqlmock.NewResult(1, 1))

		assert.NoError(t, repo.Save(ctx, attempt))
	})

	t.Run("storage error propagates to caller", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO login_attempts").
			WithArgs(attempt.IPAddress, attempt.Email, attempt.Success, attempt.UserAgent).
			WillReturnError(errors.New("disk full"))

		assert.Error(t, repo.Save(ctx, attempt))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginAttemptWriteRepository_DeleteOlderThan(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLoginAttemptWriteRepository(db)
	ctx := context.Background()

	cutoff := time.Now().Add(-30 * 24 * time.Hour)

	mock.ExpectExec("DELETE FROM login_attempts").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 42))

	removed, err := repo.DeleteOlderThan(ctx, cutoff)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
