package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/canchaleconte/cancha-api/internal/middlewares"
	"github.com/canchaleconte/cancha-api/internal/models"
	"github.com/canchaleconte/cancha-api/internal/ratelimit"
	"github.com/canchaleconte/cancha-api/internal/services"
	"github.com/canchaleconte/cancha-api/internal/sessiontoken"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, sessionID uuid.UUID, meta models.RequestMeta) error
}

// SessionResolver resolves the session behind a raw cookie token. The logout
// route is not behind the auth middleware, so the handler resolves the
// session itself and the GET variant can redirect even when the cookie is
// stale or missing.
type SessionResolver interface {
	Validate(ctx context.Context, token string) (*models.AuthContext, error)
}

// NewLogoutHandler returns an HTTP handler that destroys the current session
// and clears both cookies. On GET it redirects to the login page regardless
// of outcome, so a plain link always lands on the login form.
// @Summary Admin logout
// @Description Destroy the current session
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.SuccessResponse "Session destroyed"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /auth/logout [post]
func NewLogoutHandler(svc Logouter, sessions SessionResolver, secureCookies bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := middlewares.AuthContextFrom(r.Context())
		if auth == nil {
			if cookie, err := r.Cookie(sessiontoken.SessionCookieName); err == nil && cookie.Value != "" {
				auth, _ = sessions.Validate(r.Context(), cookie.Value)
			}
		}

		if auth == nil && r.Method != http.MethodGet {
			writeErrorCode(w, http.StatusUnauthorized, services.CodeUnauthorized, "Necesitás iniciar sesión")
			return
		}

		if auth != nil {
			meta := models.RequestMeta{IP: ratelimit.ClientIP(r), UserAgent: r.UserAgent()}
			if err := svc.Logout(r.Context(), auth.Session.SessionID, meta); err != nil && r.Method != http.MethodGet {
				writeServiceError(w, err)
				return
			}
		}

		sessiontoken.ClearSessionCookie(w, secureCookies)
		sessiontoken.ClearCSRFCookie(w, secureCookies)

		if r.Method == http.MethodGet {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		writeMessage(w, http.StatusOK, nil, "Sesión cerrada")
	}
}
