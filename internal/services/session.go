package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/canchaleconte/cancha-api/internal/logger"
	"github.com/canchaleconte/cancha-api/internal/models"
	"github.com/canchaleconte/cancha-api/internal/sessiontoken"
)

// Session lifetimes and the refresh-on-read thresholds. Validation refreshes
// a session once its remaining lifetime drops below the threshold, so active
// users are not forced to re-login while idle sessions still expire.
const (
	SessionLifetime       = 2 * time.Hour
	RememberLifetime      = 24 * time.Hour
	refreshThreshold      = 30 * time.Minute
	rememberRefreshThresh = time.Hour
)

// SessionUserReader loads the session's owning user.
type SessionUserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.AdminUserDB, error)
}

// SessionReader defines read operations on session records.
type SessionReader interface {
	GetByID(ctx context.Context, sessionID uuid.UUID) (*models.SessionDB, error)
}

// SessionWriter defines write operations on session records.
type SessionWriter interface {
	Save(ctx context.Context, s *models.SessionDB) error
	UpdateExpiry(ctx context.Context, sessionID uuid.UUID, expiresAt time.Time) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

// TokenCodec signs and verifies session tokens.
type TokenCodec interface {
	Generate(ctx context.Context, sessionID, userID uuid.UUID, expiresAt time.Time) (string, error)
	Parse(ctx context.Context, tokenString string) (*sessiontoken.Claims, error)
}

// SessionService issues, validates, refreshes, and destroys sessions. A
// session is a server-side row referenced by a signed token; the row is
// authoritative, so destroying it invalidates an otherwise-valid token.
type SessionService struct {
	users  SessionUserReader
	reader SessionReader
	writer SessionWriter
	codec  TokenCodec
	now    func() time.Time
}

// NewSessionService creates a new SessionService.
func NewSessionService(users SessionUserReader, reader SessionReader, writer SessionWriter, codec TokenCodec) *SessionService {
	return &SessionService{
		users:  users,
		reader: reader,
		writer: writer,
		codec:  codec,
		now:    time.Now,
	}
}

// Lifetime returns the session duration for the remember-me choice.
func Lifetime(rememberMe bool) time.Duration {
	if rememberMe {
		return RememberLifetime
	}
	return SessionLifetime
}

// Create issues a new session for the user and returns the signed token with
// the stored session. Request metadata is captured for audit only; it is not
// enforced on later validation.
func (svc *SessionService) Create(ctx context.Context, user *models.AdminUserDB, rememberMe bool, meta models.RequestMeta) (string, *models.SessionDB, error) {
	session := &models.SessionDB{
		SessionID:  uuid.New(),
		UserID:     user.UserID,
		ExpiresAt:  svc.now().Add(Lifetime(rememberMe)),
		RememberMe: rememberMe,
		CreatedIP:  meta.IP,
		CreatedUA:  meta.UserAgent,
	}

	if err := svc.writer.Save(ctx, session); err != nil {
		logger.Log.Errorw("failed to save session", "user_id", user.UserID, "error", err)
		return "", nil, err
	}

	token, err := svc.codec.Generate(ctx, session.SessionID, user.UserID, session.ExpiresAt)
	if err != nil {
		logger.Log.Errorw("failed to sign session token", "session_id", session.SessionID, "error", err)
		return "", nil, err
	}

	return token, session, nil
}

// Validate checks a token and returns the authenticated context, or nil when
// the caller is simply not authenticated: missing/invalid signature, unknown
// or expired session, or deactivated user. Only infrastructure failures
// return a non-nil error.
func (svc *SessionService) Validate(ctx context.Context, token string) (*models.AuthContext, error) {
	claims, err := svc.codec.Parse(ctx, token)
	if err != nil {
		return nil, nil
	}

	session, err := svc.reader.GetByID(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		// Destroyed (or never existed): the client cookie is worthless.
		return nil, nil
	}
	if !svc.now().Before(session.ExpiresAt) {
		return nil, nil
	}

	user, err := svc.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, nil
	}

	return &models.AuthContext{User: user, Session: session}, nil
}

// ValidateAndRefresh validates a token and opportunistically extends
// sessions nearing expiry. On refresh it returns a re-signed token carrying
// the new expiry; the old token's exp claim is frozen at issue time, so
// extending only the row would still log the client out. An empty token
// means no refresh happened; refresh failures are logged but do not fail
// validation.
func (svc *SessionService) ValidateAndRefresh(ctx context.Context, token string) (*models.AuthContext, string, error) {
	auth, err := svc.Validate(ctx, token)
	if err != nil || auth == nil {
		return auth, "", err
	}

	threshold := refreshThreshold
	if auth.Session.RememberMe {
		threshold = rememberRefreshThresh
	}
	if auth.Session.ExpiresAt.Sub(svc.now()) >= threshold {
		return auth, "", nil
	}

	expiresAt, err := svc.Refresh(ctx, auth.Session.SessionID, auth.Session.RememberMe)
	if err != nil {
		logger.Log.Errorw("opportunistic session refresh failed", "session_id", auth.Session.SessionID, "error", err)
		return auth, "", nil
	}
	newToken, err := svc.codec.Generate(ctx, auth.Session.SessionID, auth.Session.UserID, expiresAt)
	if err != nil {
		logger.Log.Errorw("failed to re-sign refreshed session token", "session_id", auth.Session.SessionID, "error", err)
		return auth, "", nil
	}
	auth.Session.ExpiresAt = expiresAt
	return auth, newToken, nil
}

// Refresh extends a session's expiry using the same duration rule as
// creation. Idempotent under repeated calls.
func (svc *SessionService) Refresh(ctx context.Context, sessionID uuid.UUID, rememberMe bool) (time.Time, error) {
	expiresAt := svc.now().Add(Lifetime(rememberMe))
	if err := svc.writer.UpdateExpiry(ctx, sessionID, expiresAt); err != nil {
		return time.Time{}, err
	}
	return expiresAt, nil
}

// Destroy invalidates the server-side session record. Subsequent validation
// fails even while the client still holds an unexpired cookie.
func (svc *SessionService) Destroy(ctx context.Context, sessionID uuid.UUID) error {
	return svc.writer.Delete(ctx, sessionID)
}
