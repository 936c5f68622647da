package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canchaleconte/cancha-api/internal/models"
	"github.com/canchaleconte/cancha-api/internal/services"
)

// PhoneCanceller cancels a registration located by game share token and phone.
type PhoneCanceller interface {
	CancelByPhone(ctx context.Context, shareToken, phone, reason string) (*models.RefundInfo, error)
}

// NewCancelRegistrationHandler returns an HTTP handler cancelling a
// registration by game share token and phone number.
// @Summary Cancel a registration by phone
// @Description Cancel the active registration for a phone number in a game
// @Tags public
// @Produce json
// @Param shareToken path string true "Game share token"
// @Param phone query string true "Registered phone in international format"
// @Param reason query string false "Free-form reason"
// @Success 200 {object} handlers.SuccessResponse "Cancelled, refund eligibility included"
// @Failure 400 {object} handlers.ErrorResponse "Invalid phone"
// @Failure 404 {object} handlers.ErrorResponse "Unknown game or phone not registered"
// @Failure 403 {object} handlers.ErrorResponse "Cancellation window closed"
// @Router /games/{shareToken}/register [delete]
func NewCancelRegistrationHandler(svc PhoneCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		phone := r.URL.Query().Get("phone")
		if phone == "" {
			writeErrorCode(w, http.StatusBadRequest, services.CodeValidation, "Falta el teléfono")
			return
		}
		reason := r.URL.Query().Get("reason")

		refund, err := svc.CancelByPhone(r.Context(), chi.URLParam(r, "shareToken"), phone, reason)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeMessage(w, http.StatusOK, refund, "Inscripción cancelada")
	}
}
