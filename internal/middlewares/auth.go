package middlewares

import (
	"context"
	"net/http"

	"github.com/canchaleconte/cancha-api/internal/logger"
	"github.com/canchaleconte/cancha-api/internal/models"
	"github.com/canchaleconte/cancha-api/internal/services"
	"github.com/canchaleconte/cancha-api/internal/sessiontoken"
)

type contextKey string

const authContextKey contextKey = "authContext"

// Authenticator validates a session token and opportunistically extends
// sessions close to expiry, returning a re-signed token when it does.
type Authenticator interface {
	ValidateAndRefresh(ctx context.Context, token string) (*models.AuthContext, string, error)
}

// AuthMiddleware returns a middleware that authenticates the admin session
// cookie and injects the AuthContext for downstream handlers. When
// requiredRole is non-empty the authenticated user must hold that role.
// Missing or invalid sessions get 401, an insufficient role gets 403.
func AuthMiddleware(auth Authenticator, secureCookies bool, requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			cookie, err := r.Cookie(sessiontoken.SessionCookieName)
			if err != nil || cookie.Value == "" {
				writeError(w, http.StatusUnauthorized, services.CodeUnauthorized, "Necesitás iniciar sesión")
				return
			}
			token := cookie.Value

			authCtx, newToken, err := auth.ValidateAndRefresh(ctx, token)
			if err != nil {
				logger.Log.Errorw("session validation failed", "error", err)
				writeError(w, http.StatusInternalServerError, services.CodeInternal, "Error interno del servidor")
				return
			}
			if authCtx == nil {
				sessiontoken.ClearSessionCookie(w, secureCookies)
				writeError(w, http.StatusUnauthorized, services.CodeUnauthorized, "Necesitás iniciar sesión")
				return
			}

			if requiredRole != "" && authCtx.User.Role != requiredRole {
				writeError(w, http.StatusForbidden, services.CodeForbidden, "No tenés permiso para esta acción")
				return
			}

			if newToken != "" {
				sessiontoken.SetSessionCookie(w, newToken, authCtx.Session.ExpiresAt, secureCookies)
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, authContextKey, authCtx)))
		})
	}
}

// AuthContextFrom returns the AuthContext injected by AuthMiddleware, or nil
// when the request was not authenticated.
func AuthContextFrom(ctx context.Context) *models.AuthContext {
	auth, _ := ctx.Value(authContextKey).(*models.AuthContext)
	return auth
}
