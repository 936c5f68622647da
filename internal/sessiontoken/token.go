package sessiontoken

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Error variables
var (
	ErrNoToken      = errors.New("session cookie missing")
	ErrInvalidToken = errors.New("invalid session token")
)

// Claims are the signed claims carried by a session token. The token is only
// a pointer to the server-side session row; destroying the row invalidates
// the token regardless of its exp claim.
type Claims struct {
	SessionID uuid.UUID `json:"session_id"`
	UserID    uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens.
type Codec struct {
	SecretKey string
}

// New creates a new Codec with the given signing secret.
func New(secretKey string) *Codec {
	return &Codec{SecretKey: secretKey}
}

// Generate creates a signed HS256 token referencing a session row.
func (c *Codec) Generate(ctx context.Context, sessionID, userID uuid.UUID, expiresAt time.Time) (string, error) {
	claims := &Claims{
		SessionID: sessionID,
		UserID:    userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.SecretKey))
}

// Parse verifies the token signature and expiry and returns the claims.
// Any failure is reported as ErrInvalidToken.
func (c *Codec) Parse(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(c.SecretKey), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == uuid.Nil || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GetTokenFromRequest extracts the session token from the session cookie.
func (c *Codec) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoToken
	}
	return cookie.Value, nil
}
