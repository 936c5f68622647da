package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := NewMockKafkaWriter(ctrl)
	pub := NewPublisher(mockWriter)
	ctx := context.Background()

	var captured kafka.Message
	mockWriter.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			captured = msgs[0]
			return nil
		})

	gameID := uuid.New()
	err := pub.Publish(ctx, Event{
		Type:        EventRegistrationConfirmed,
		GameID:      gameID,
		PlayerPhone: "+5491155551234",
	})
	assert.NoError(t, err)

	var decoded Event
	assert.NoError(t, json.Unmarshal(captured.Value, &decoded))
	assert.Equal(t, EventRegistrationConfirmed, decoded.Type)
	assert.Equal(t, gameID, decoded.GameID)
	assert.NotEqual(t, uuid.Nil, decoded.EventID, "event ID should be filled in")
	assert.False(t, decoded.OccurredAt.IsZero(), "timestamp should be filled in")
	assert.Equal(t, decoded.EventID.String(), string(captured.Key))
}

func TestPublisher_Publish_WriterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := NewMockKafkaWriter(ctrl)
	pub := NewPublisher(mockWriter)

	mockWriter.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(errors.New("broker unavailable"))

	err := pub.Publish(context.Background(), Event{Type: EventDeliveryStatus})
	assert.Error(t, err)
}

func TestPublisher_Publish_NilWriterSkips(t *testing.T) {
	pub := NewPublisher(nil)

	err := pub.Publish(context.Background(), Event{Type: EventRegistrationCancelled})
	assert.NoError(t, err)
}
