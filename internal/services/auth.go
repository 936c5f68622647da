package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/canchaleconte/cancha-api/internal/logger"
	"github.com/canchaleconte/cancha-api/internal/models"
	"github.com/canchaleconte/cancha-api/internal/password"
)

// UserReader defines read operations for admin users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.AdminUserDB, error)
}

// SessionManager is the slice of SessionService consumed by authentication.
type SessionManager interface {
	Create(ctx context.Context, user *models.AdminUserDB, rememberMe bool, meta models.RequestMeta) (string, *models.SessionDB, error)
	Destroy(ctx context.Context, sessionID uuid.UUID) error
}

// AuthService handles admin login and logout. Authentication is fail-closed:
// any doubt (unknown email, bad password, deactivated account) resolves to
// the same invalid-credentials outcome.
type AuthService struct {
	users    UserReader
	sessions SessionManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserReader, sessions SessionManager) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Login verifies credentials and issues a session. The error is
// ErrInvalidCredentials for every authentication failure so callers cannot
// probe which emails exist.
func (svc *AuthService) Login(ctx context.Context, email, plainPassword string, rememberMe bool, meta models.RequestMeta) (string, *models.AuthContext, error) {
	if email == "" || plainPassword == "" {
		return "", nil, NewValidationError("email y contraseña son obligatorios")
	}

	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to load user for login", "error", err)
		return "", nil, err
	}
	if user == nil || !user.IsActive {
		logger.AuthEvent("login_failed", meta.IP, meta.UserAgent, "email", email)
		return "", nil, ErrInvalidCredentials
	}

	if !password.Verify(plainPassword, user.PasswordHash) {
		logger.AuthEvent("login_failed", meta.IP, meta.UserAgent, "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, session, err := svc.sessions.Create(ctx, user, rememberMe, meta)
	if err != nil {
		return "", nil, err
	}

	logger.AuthEvent("login_success", meta.IP, meta.UserAgent, "user_id", user.UserID)
	return token, &models.AuthContext{User: user, Session: session}, nil
}

// Logout destroys the session so the token cannot be replayed.
func (svc *AuthService) Logout(ctx context.Context, sessionID uuid.UUID, meta models.RequestMeta) error {
	if err := svc.sessions.Destroy(ctx, sessionID); err != nil {
		logger.Log.Errorw("failed to destroy session", "session_id", sessionID, "error", err)
		return err
	}

	logger.AuthEvent("logout", meta.IP, meta.UserAgent, "session_id", sessionID)
	return nil
}
