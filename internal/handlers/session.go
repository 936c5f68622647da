package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/canchaleconte/cancha-api/internal/models"
	"github.com/canchaleconte/cancha-api/internal/services"
	"github.com/canchaleconte/cancha-api/internal/sessiontoken"
)

// SessionValidator validates a session token, extending sessions close to
// expiry and re-signing the token when it does.
type SessionValidator interface {
	ValidateAndRefresh(ctx context.Context, token string) (*models.AuthContext, string, error)
}

// SessionResponse is the payload of a session check
// swagger:model SessionResponse
type SessionResponse struct {
	User      models.PublicUser `json:"user"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// NewSessionHandler returns an HTTP handler reporting the current session.
// Stale cookies are cleared so the browser stops resending them.
// @Summary Current session
// @Description Validate the session cookie and return the logged-in admin
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.SuccessResponse "Authenticated"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /auth/validate [get]
func NewSessionHandler(svc SessionValidator, secureCookies bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessiontoken.SessionCookieName)
		if err != nil || cookie.Value == "" {
			writeErrorCode(w, http.StatusUnauthorized, services.CodeUnauthorized, "Necesitás iniciar sesión")
			return
		}

		auth, newToken, err := svc.ValidateAndRefresh(r.Context(), cookie.Value)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if auth == nil {
			sessiontoken.ClearSessionCookie(w, secureCookies)
			sessiontoken.ClearCSRFCookie(w, secureCookies)
			writeErrorCode(w, http.StatusUnauthorized, services.CodeUnauthorized, "Necesitás iniciar sesión")
			return
		}

		if newToken != "" {
			sessiontoken.SetSessionCookie(w, newToken, auth.Session.ExpiresAt, secureCookies)
		}

		writeData(w, http.StatusOK, SessionResponse{
			User:      auth.User.Public(),
			ExpiresAt: auth.Session.ExpiresAt,
		})
	}
}
