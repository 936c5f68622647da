package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/canchaleconte/cancha-api/internal/models"
	"github.com/canchaleconte/cancha-api/internal/repositories"
	"github.com/canchaleconte/cancha-api/internal/tokens"
)

// GameLister defines the admin-facing game reads.
type GameLister interface {
	ListWithCounts(ctx context.Context) ([]models.GameSummary, error)
	GetByID(ctx context.Context, gameID uuid.UUID) (*models.GameDB, error)
}

// GameWriter defines write operations for games.
type GameWriter interface {
	Save(ctx context.Context, g *models.GameDB) error
}

// RegistrationLister lists a game's registrations for the admin view.
type RegistrationLister interface {
	ListByGame(ctx context.Context, gameID uuid.UUID) ([]models.RegistrationDB, error)
}

// CreateGameInput is the admin payload for a new game.
type CreateGameInput struct {
	Title      string
	GameDate   time.Time
	MinPlayers int
	MaxPlayers int
	TeamAName  string
	TeamBName  string
}

// GameService handles admin game management.
type GameService struct {
	lister        GameLister
	writer        GameWriter
	registrations RegistrationLister
}

// NewGameService creates a new GameService.
func NewGameService(lister GameLister, writer GameWriter, registrations RegistrationLister) *GameService {
	return &GameService{lister: lister, writer: writer, registrations: registrations}
}

// Create validates the input, mints a share token and stores the game open
// for registration. A share-token collision is retried once with a fresh
// token before giving up.
func (svc *GameService) Create(ctx context.Context, input CreateGameInput) (*models.GameDB, error) {
	input.Title = strings.TrimSpace(input.Title)

	if input.Title == "" {
		return nil, NewValidationError("el título es obligatorio")
	}
	if input.MaxPlayers < 2 {
		return nil, NewValidationError("el partido necesita al menos 2 jugadores")
	}
	if input.MinPlayers < 0 || input.MinPlayers > input.MaxPlayers {
		return nil, NewValidationError("el mínimo de jugadores no puede superar al máximo")
	}
	if !input.GameDate.After(time.Now()) {
		return nil, NewValidationError("la fecha del partido debe ser futura")
	}

	game := &models.GameDB{
		GameID:     uuid.New(),
		Title:      input.Title,
		GameDate:   input.GameDate,
		MinPlayers: input.MinPlayers,
		MaxPlayers: input.MaxPlayers,
		Status:     models.GameStatusOpen,
		TeamAName:  input.TeamAName,
		TeamBName:  input.TeamBName,
	}

	for attempt := 0; attempt < 2; attempt++ {
		shareToken, err := tokens.GenerateShareToken()
		if err != nil {
			return nil, err
		}
		game.ShareToken = shareToken

		err = svc.writer.Save(ctx, game)
		if err == nil {
			return game, nil
		}
		if !errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, err
		}
	}

	return nil, repositories.ErrDuplicateKey
}

// List returns all games with their active registration counts.
func (svc *GameService) List(ctx context.Context) ([]models.GameSummary, error) {
	return svc.lister.ListWithCounts(ctx)
}

// ListRegistrations returns the registrations of one game for the admin
// dashboard. Unknown games map to the invalid-token error for a 404.
func (svc *GameService) ListRegistrations(ctx context.Context, gameID uuid.UUID) ([]models.RegistrationDB, error) {
	game, err := svc.lister.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrInvalidToken
	}
	return svc.registrations.ListByGame(ctx, gameID)
}
