package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canchaleconte/cancha-api/internal/models"
)

// RegistrationViewer looks up the self-service view of a registration.
type RegistrationViewer interface {
	GetByToken(ctx context.Context, token string) (*models.RegistrationDetails, error)
}

// TokenCanceller cancels a registration through its management token.
type TokenCanceller interface {
	CancelByToken(ctx context.Context, token, reason string) (*models.RefundInfo, error)
}

// NewMyRegistrationHandler returns an HTTP handler for the self-service
// registration view behind a management token.
// @Summary View own registration
// @Description Return the registration behind a management token
// @Tags public
// @Produce json
// @Param token path string true "Management token"
// @Success 200 {object} handlers.SuccessResponse "Registration details"
// @Failure 404 {object} handlers.ErrorResponse "Unknown token"
// @Router /mi-registro/{token} [get]
func NewMyRegistrationHandler(svc RegistrationViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		details, err := svc.GetByToken(r.Context(), chi.URLParam(r, "token"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeData(w, http.StatusOK, details)
	}
}

// CancelRequest represents the JSON body for a cancellation
// swagger:model CancelRequest
type CancelRequest struct {
	// Optional free-form reason
	// default: no puedo ir
	Reason string `json:"reason"`
}

// NewCancelByTokenHandler returns an HTTP handler cancelling the registration
// behind a management token.
// @Summary Cancel own registration
// @Description Cancel the registration behind a management token
// @Tags public
// @Accept json
// @Produce json
// @Param token path string true "Management token"
// @Param cancelRequest body handlers.CancelRequest false "Cancellation reason"
// @Success 200 {object} handlers.SuccessResponse "Cancelled, refund eligibility included"
// @Failure 404 {object} handlers.ErrorResponse "Unknown token"
// @Failure 403 {object} handlers.ErrorResponse "Cancellation window closed"
// @Router /mi-registro/{token}/cancel [post]
func NewCancelByTokenHandler(svc TokenCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CancelRequest
		if r.Body != nil {
			// The reason is optional, a missing or empty body is fine.
			json.NewDecoder(r.Body).Decode(&req)
		}

		refund, err := svc.CancelByToken(r.Context(), chi.URLParam(r, "token"), req.Reason)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeMessage(w, http.StatusOK, refund, "Inscripción cancelada")
	}
}
