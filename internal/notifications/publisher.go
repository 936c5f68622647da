package notifications

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/canchaleconte/cancha-api/internal/logger"
)

// Event types published to the notifications topic. The WhatsApp dispatcher
// consumes these and sends the actual messages; that glue is outside this
// service.
const (
	EventRegistrationConfirmed = "registration_confirmed"
	EventRegistrationCancelled = "registration_cancelled"
	EventDeliveryStatus        = "delivery_status"
)

// Event is a notification event for the WhatsApp dispatcher.
type Event struct {
	EventID        uuid.UUID         `json:"event_id"`
	Type           string            `json:"type"`
	GameID         uuid.UUID         `json:"game_id,omitempty"`
	RegistrationID uuid.UUID         `json:"registration_id,omitempty"`
	PlayerPhone    string            `json:"player_phone,omitempty"`
	Detail         map[string]string `json:"detail,omitempty"`
	OccurredAt     time.Time         `json:"occurred_at"`
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher publishes notification events to Kafka.
type Publisher struct {
	writer KafkaWriter
}

// NewPublisher creates a new Publisher.
func NewPublisher(writer KafkaWriter) *Publisher {
	return &Publisher{writer: writer}
}

// Publish sends one event. The event ID and timestamp are filled in when
// absent so callers only set the domain fields.
func (p *Publisher) Publish(ctx context.Context, event Event) error {
	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping notification", "type", event.Type)
		return nil
	}

	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal notification event", "type", event.Type, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID.String()),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish notification event", "type", event.Type, "error", err)
		return err
	}

	logger.Log.Infow("notification event published", "type", event.Type, "event_id", event.EventID)
	return nil
}
