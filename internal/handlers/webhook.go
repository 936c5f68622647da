package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/canchaleconte/cancha-api/internal/logger"
	"github.com/canchaleconte/cancha-api/internal/notifications"
	"github.com/canchaleconte/cancha-api/internal/services"
)

// WebhookPublisher forwards delivery status events to the notification
// pipeline.
type WebhookPublisher interface {
	Publish(ctx context.Context, event notifications.Event) error
}

// webhookPayload is the subset of the WhatsApp webhook body we consume.
type webhookPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Statuses []struct {
					ID          string `json:"id"`
					Status      string `json:"status"`
					RecipientID string `json:"recipient_id"`
				} `json:"statuses"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// NewWebhookVerifyHandler returns an HTTP handler answering the webhook
// subscription challenge.
// @Summary Webhook verification
// @Description Answer the WhatsApp webhook subscription challenge
// @Tags webhook
// @Produce plain
// @Param hub.mode query string true "Must be subscribe"
// @Param hub.verify_token query string true "Configured verify token"
// @Param hub.challenge query string true "Challenge to echo"
// @Success 200 {string} string "Challenge echoed"
// @Failure 403 {object} handlers.ErrorResponse "Verify token mismatch"
// @Router /notifications/whatsapp/webhook [get]
func NewWebhookVerifyHandler(verifyToken string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("hub.mode") != "subscribe" || q.Get("hub.verify_token") != verifyToken {
			writeErrorCode(w, http.StatusForbidden, services.CodeForbidden, "Verificación rechazada")
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(q.Get("hub.challenge")))
	}
}

// NewWebhookHandler returns an HTTP handler consuming delivery status
// updates. The provider retries on non-200, so everything past reading the
// body answers 200 even when processing fails.
// @Summary Webhook delivery statuses
// @Description Consume WhatsApp delivery status updates
// @Tags webhook
// @Accept json
// @Produce json
// @Success 200 {object} handlers.SuccessResponse "Acknowledged"
// @Router /notifications/whatsapp/webhook [post]
func NewWebhookHandler(publisher WebhookPublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload webhookPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logger.Log.Errorw("unreadable webhook payload", "err", err)
			writeMessage(w, http.StatusOK, nil, "ok")
			return
		}

		for _, entry := range payload.Entry {
			for _, change := range entry.Changes {
				for _, status := range change.Value.Statuses {
					event := notifications.Event{
						Type:        notifications.EventDeliveryStatus,
						PlayerPhone: status.RecipientID,
						Detail: map[string]string{
							"message_id": status.ID,
							"status":     status.Status,
						},
					}
					if err := publisher.Publish(r.Context(), event); err != nil {
						logger.Log.Errorw("failed to publish delivery status", "message_id", status.ID, "err", err)
					}
				}
			}
		}

		writeMessage(w, http.StatusOK, nil, "ok")
	}
}
