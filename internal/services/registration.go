package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/canchaleconte/cancha-api/internal/logger"
	"github.com/canchaleconte/cancha-api/internal/models"
	"github.com/canchaleconte/cancha-api/internal/notifications"
	"github.com/canchaleconte/cancha-api/internal/repositories"
	"github.com/canchaleconte/cancha-api/internal/tokens"
)

// Cancellation timing rules. Cancelling closes 2 hours before kickoff; a
// paid registration cancelled at least 24 hours before kickoff is refunded.
const (
	cancellationCutoff = 2 * time.Hour
	refundCutoff       = 24 * time.Hour
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

// GameReader defines read operations for games.
type GameReader interface {
	GetByShareToken(ctx context.Context, shareToken string) (*models.GameDB, error)
	GetByID(ctx context.Context, gameID uuid.UUID) (*models.GameDB, error)
}

// RegistrationReader defines read operations for registrations.
type RegistrationReader interface {
	GetByToken(ctx context.Context, token string) (*models.RegistrationDB, error)
	GetActiveByPhone(ctx context.Context, gameID uuid.UUID, phone string) (*models.RegistrationDB, error)
}

// RegistrationWriter defines write operations for registrations.
type RegistrationWriter interface {
	ReserveSlot(ctx context.Context, reg *models.RegistrationDB, maxPlayers int) error
	Cancel(ctx context.Context, registrationID uuid.UUID, reason string, refunded bool) error
}

// EventPublisher publishes notification events.
type EventPublisher interface {
	Publish(ctx context.Context, event notifications.Event) error
}

// RegisterInput is the player data for a friend registration.
type RegisterInput struct {
	PlayerName  string
	PlayerPhone string
}

// RegistrationService implements friend self-registration and self-service
// cancellation. Full games are rejected outright; there is no waiting list.
type RegistrationService struct {
	games     GameReader
	reader    RegistrationReader
	writer    RegistrationWriter
	publisher EventPublisher
	baseURL   string
	now       func() time.Time
}

// NewRegistrationService creates a new RegistrationService. baseURL is the
// public origin used to build management links.
func NewRegistrationService(games GameReader, reader RegistrationReader, writer RegistrationWriter, publisher EventPublisher, baseURL string) *RegistrationService {
	return &RegistrationService{
		games:     games,
		reader:    reader,
		writer:    writer,
		publisher: publisher,
		baseURL:   baseURL,
		now:       time.Now,
	}
}

// RegisterFriend registers a player for the game behind a share token and
// returns the stored registration with its management URL. The capacity
// check is atomic at the storage layer, so concurrent registrations cannot
// overbook.
func (svc *RegistrationService) RegisterFriend(ctx context.Context, shareToken string, input RegisterInput) (*models.RegistrationDB, string, error) {
	input.PlayerName = strings.TrimSpace(input.PlayerName)
	input.PlayerPhone = strings.TrimSpace(input.PlayerPhone)

	if input.PlayerName == "" {
		return nil, "", NewValidationError("el nombre es obligatorio")
	}
	if !phonePattern.MatchString(input.PlayerPhone) {
		return nil, "", NewValidationError("el teléfono no es válido")
	}
	if !tokens.IsValidShareFormat(shareToken) {
		return nil, "", ErrInvalidToken
	}

	game, err := svc.games.GetByShareToken(ctx, shareToken)
	if err != nil {
		return nil, "", err
	}
	if game == nil || !game.IsJoinable(svc.now()) {
		return nil, "", ErrInvalidToken
	}

	existing, err := svc.reader.GetActiveByPhone(ctx, game.GameID, input.PlayerPhone)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrDuplicateRegistration
	}

	managementToken, err := tokens.Generate()
	if err != nil {
		return nil, "", err
	}

	reg := &models.RegistrationDB{
		RegistrationID:    uuid.New(),
		GameID:            game.GameID,
		PlayerName:        input.PlayerName,
		PlayerPhone:       input.PlayerPhone,
		PaymentStatus:     models.PaymentPending,
		RegistrationToken: managementToken,
	}

	if err := svc.writer.ReserveSlot(ctx, reg, game.MaxPlayers); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCapacityExceeded):
			return nil, "", ErrGameFull
		case errors.Is(err, repositories.ErrDuplicateKey):
			// Unique index backstop for the duplicate pre-check race.
			return nil, "", ErrDuplicateRegistration
		default:
			return nil, "", err
		}
	}

	svc.publish(ctx, notifications.Event{
		Type:           notifications.EventRegistrationConfirmed,
		GameID:         game.GameID,
		RegistrationID: reg.RegistrationID,
		PlayerPhone:    reg.PlayerPhone,
		Detail:         map[string]string{"game_title": game.Title},
	})

	return reg, tokens.ManagementURL(svc.baseURL, managementToken), nil
}

// GetByToken returns the minimized self-service projection for a management
// token. Malformed tokens are rejected before any storage lookup.
func (svc *RegistrationService) GetByToken(ctx context.Context, token string) (*models.RegistrationDetails, error) {
	if !tokens.IsValidFormat(token) {
		return nil, ErrInvalidToken
	}

	reg, err := svc.reader.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrInvalidToken
	}

	game, err := svc.games.GetByID(ctx, reg.GameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		logger.Log.Errorw("registration references missing game", "registration_id", reg.RegistrationID, "game_id", reg.GameID)
		return nil, ErrInvalidToken
	}

	return &models.RegistrationDetails{
		PlayerName:    reg.PlayerName,
		PaymentStatus: reg.PaymentStatus,
		GameTitle:     game.Title,
		GameDate:      game.GameDate,
		Cancelled:     reg.IsCancelled(),
		CancelledAt:   reg.CancelledAt,
	}, nil
}

// CancelByToken cancels a registration by its management token, recording
// the reason and computing refund eligibility.
func (svc *RegistrationService) CancelByToken(ctx context.Context, token, reason string) (*models.RefundInfo, error) {
	if !tokens.IsValidFormat(token) {
		return nil, ErrInvalidToken
	}

	reg, err := svc.reader.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrInvalidToken
	}

	return svc.cancel(ctx, reg, reason)
}

// CancelByPhone cancels a registration located by its game share token and
// phone number, for the public DELETE endpoint.
func (svc *RegistrationService) CancelByPhone(ctx context.Context, shareToken, phone, reason string) (*models.RefundInfo, error) {
	if !tokens.IsValidShareFormat(shareToken) {
		return nil, ErrInvalidToken
	}
	if !phonePattern.MatchString(strings.TrimSpace(phone)) {
		return nil, NewValidationError("el teléfono no es válido")
	}

	game, err := svc.games.GetByShareToken(ctx, shareToken)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrInvalidToken
	}

	reg, err := svc.reader.GetActiveByPhone(ctx, game.GameID, strings.TrimSpace(phone))
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrInvalidToken
	}

	return svc.cancel(ctx, reg, reason)
}

func (svc *RegistrationService) cancel(ctx context.Context, reg *models.RegistrationDB, reason string) (*models.RefundInfo, error) {
	if reg.IsCancelled() {
		return nil, ErrCancellationNotAllowed
	}

	game, err := svc.games.GetByID(ctx, reg.GameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		logger.Log.Errorw("registration references missing game", "registration_id", reg.RegistrationID, "game_id", reg.GameID)
		return nil, ErrInvalidToken
	}

	now := svc.now()
	if now.After(game.GameDate.Add(-cancellationCutoff)) {
		return nil, ErrCancellationNotAllowed
	}

	refund := svc.refundInfo(reg, game, now)

	if err := svc.writer.Cancel(ctx, reg.RegistrationID, reason, refund.Eligible); err != nil {
		return nil, err
	}

	svc.publish(ctx, notifications.Event{
		Type:           notifications.EventRegistrationCancelled,
		GameID:         game.GameID,
		RegistrationID: reg.RegistrationID,
		PlayerPhone:    reg.PlayerPhone,
		Detail: map[string]string{
			"game_title":      game.Title,
			"refund_eligible": map[bool]string{true: "yes", false: "no"}[refund.Eligible],
		},
	})

	return &refund, nil
}

func (svc *RegistrationService) refundInfo(reg *models.RegistrationDB, game *models.GameDB, now time.Time) models.RefundInfo {
	if reg.PaymentStatus != models.PaymentPaid {
		return models.RefundInfo{Eligible: false, Reason: "no hay pago registrado"}
	}
	if now.After(game.GameDate.Add(-refundCutoff)) {
		return models.RefundInfo{Eligible: false, Reason: "cancelación con menos de 24 horas de anticipación"}
	}
	return models.RefundInfo{Eligible: true, Reason: "pago devuelto por cancelación anticipada"}
}

// publish sends a notification event fail-soft: notification delivery must
// never fail the primary request.
func (svc *RegistrationService) publish(ctx context.Context, event notifications.Event) {
	if svc.publisher == nil {
		return
	}
	if err := svc.publisher.Publish(ctx, event); err != nil {
		logger.Log.Errorw("failed to publish registration event", "type", event.Type, "error", err)
	}
}
