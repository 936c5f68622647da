package middlewares

import (
	"context"
	"net/http"
	"strconv"

	"github.com/canchaleconte/cancha-api/internal/ratelimit"
	"github.com/canchaleconte/cancha-api/internal/services"
)

// Limiter checks whether a request is within the rate limit for an action.
type Limiter interface {
	Check(ctx context.Context, r *http.Request, action ratelimit.Action) ratelimit.Result
}

// RateLimitMiddleware returns a middleware enforcing the per-IP limit for the
// given action. Limited requests get 429 with a Retry-After header.
func RateLimitMiddleware(limiter Limiter, action ratelimit.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result := limiter.Check(r.Context(), r, action)
			if !result.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(result.RetryAfter.Seconds())))
				writeError(w, http.StatusTooManyRequests, services.CodeRateLimited, "Demasiados intentos, probá de nuevo más tarde")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
