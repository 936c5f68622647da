package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/canchaleconte/cancha-api/internal/services"
	"github.com/canchaleconte/cancha-api/internal/sessiontoken"
)

// CSRFMiddleware enforces the double-submit cookie check on state-changing
// requests: the value of the CSRF cookie must match the CSRF header.
// Safe methods pass through untouched.
func CSRFMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(sessiontoken.CSRFCookieName)
			header := r.Header.Get(sessiontoken.CSRFHeaderName)
			if err != nil || cookie.Value == "" || header == "" ||
				subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(header)) != 1 {
				writeError(w, http.StatusForbidden, services.CodeForbidden, "Solicitud rechazada")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
