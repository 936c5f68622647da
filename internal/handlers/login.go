package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/canchaleconte/cancha-api/internal/models"
	"github.com/canchaleconte/cancha-api/internal/ratelimit"
	"github.com/canchaleconte/cancha-api/internal/services"
	"github.com/canchaleconte/cancha-api/internal/sessiontoken"
	"github.com/canchaleconte/cancha-api/internal/tokens"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, plainPassword string, rememberMe bool, meta models.RequestMeta) (string, *models.AuthContext, error)
}

// LoginRateLimiter throttles login attempts per IP and records the outcome of
// each attempt.
type LoginRateLimiter interface {
	Check(ctx context.Context, r *http.Request) ratelimit.Result
	RecordAttempt(ctx context.Context, r *http.Request, email string, success bool)
}

// LoginRequest represents the JSON body for admin login
// swagger:model LoginRequest
type LoginRequest struct {
	// Admin email
	// required: true
	// default: admin@canchaleconte.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Extend the session to 24 hours
	// default: false
	RememberMe bool `json:"remember_me"`
}

// LoginResponse is the payload of a successful login
// swagger:model LoginResponse
type LoginResponse struct {
	User      models.PublicUser `json:"user"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// NewLoginHandler returns an HTTP handler for admin login.
// @Summary Admin login
// @Description Authenticate an administrator and set the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.SuccessResponse "Session established"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Failure 429 {object} handlers.ErrorResponse "Too many attempts"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer, limiter LoginRateLimiter, secureCookies bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		result := limiter.Check(ctx, r)
		if !result.Allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(result.RetryAfter.Seconds())))
			writeErrorCode(w, http.StatusTooManyRequests, services.CodeRateLimited,
				"Demasiados intentos, probá de nuevo más tarde")
			return
		}

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorCode(w, http.StatusBadRequest, services.CodeValidation, "Cuerpo de la solicitud inválido")
			return
		}

		meta := models.RequestMeta{IP: ratelimit.ClientIP(r), UserAgent: r.UserAgent()}

		token, auth, err := svc.Login(ctx, req.Email, req.Password, req.RememberMe, meta)
		if err != nil {
			limiter.RecordAttempt(ctx, r, req.Email, false)
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeErrorCode(w, http.StatusUnauthorized, services.CodeInvalidCredentials, services.ErrInvalidCredentials.Message)
				return
			}
			writeServiceError(w, err)
			return
		}

		limiter.RecordAttempt(ctx, r, req.Email, true)

		csrfToken, err := tokens.Generate()
		if err != nil {
			writeServiceError(w, err)
			return
		}

		sessiontoken.SetSessionCookie(w, token, auth.Session.ExpiresAt, secureCookies)
		sessiontoken.SetCSRFCookie(w, csrfToken, auth.Session.ExpiresAt, secureCookies)

		writeData(w, http.StatusOK, LoginResponse{
			User:      auth.User.Public(),
			ExpiresAt: auth.Session.ExpiresAt,
		})
	}
}
