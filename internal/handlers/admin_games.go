package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/canchaleconte/cancha-api/internal/models"
	"github.com/canchaleconte/cancha-api/internal/services"
	"github.com/canchaleconte/cancha-api/internal/tokens"
)

// GameCreator defines the interface for creating games.
type GameCreator interface {
	Create(ctx context.Context, input services.CreateGameInput) (*models.GameDB, error)
}

// GamesLister defines the interface for the admin games listing.
type GamesLister interface {
	List(ctx context.Context) ([]models.GameSummary, error)
}

// GameRegistrationsLister defines the interface for the admin registrations
// listing of one game.
type GameRegistrationsLister interface {
	ListRegistrations(ctx context.Context, gameID uuid.UUID) ([]models.RegistrationDB, error)
}

// CreateGameRequest represents the JSON body for creating a game
// swagger:model CreateGameRequest
type CreateGameRequest struct {
	// Game title
	// required: true
	// default: Partido del sábado
	Title string `json:"title"`

	// Kickoff date and time, RFC 3339
	// required: true
	GameDate time.Time `json:"game_date"`

	// Minimum players to confirm the game
	MinPlayers int `json:"min_players"`

	// Maximum players
	// required: true
	// default: 10
	MaxPlayers int `json:"max_players"`

	// Team A display name
	TeamAName string `json:"team_a_name"`

	// Team B display name
	TeamBName string `json:"team_b_name"`
}

// CreateGameResponse is the payload of a created game
// swagger:model CreateGameResponse
type CreateGameResponse struct {
	Game     *models.GameDB `json:"game"`
	ShareURL string         `json:"share_url"`
}

// NewCreateGameHandler returns an HTTP handler for creating a game.
// @Summary Create a game
// @Description Create a game and mint its share link
// @Tags admin
// @Accept json
// @Produce json
// @Param createGameRequest body handlers.CreateGameRequest true "Game data"
// @Success 201 {object} handlers.SuccessResponse "Game created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Viewer role cannot create games"
// @Router /admin/games [post]
func NewCreateGameHandler(svc GameCreator, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorCode(w, http.StatusBadRequest, services.CodeValidation, "Cuerpo de la solicitud inválido")
			return
		}

		game, err := svc.Create(r.Context(), services.CreateGameInput{
			Title:      req.Title,
			GameDate:   req.GameDate,
			MinPlayers: req.MinPlayers,
			MaxPlayers: req.MaxPlayers,
			TeamAName:  req.TeamAName,
			TeamBName:  req.TeamBName,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusCreated, CreateGameResponse{
			Game:     game,
			ShareURL: tokens.ShareURL(baseURL, game.ShareToken),
		})
	}
}

// NewListGamesHandler returns an HTTP handler listing all games with their
// active registration counts.
// @Summary List games
// @Description List all games with registration counts
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.SuccessResponse "Games"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /admin/games [get]
func NewListGamesHandler(svc GamesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeData(w, http.StatusOK, games)
	}
}

// NewListGameRegistrationsHandler returns an HTTP handler listing one game's
// registrations for the admin dashboard.
// @Summary List a game's registrations
// @Description List all registrations of a game, cancelled ones included
// @Tags admin
// @Produce json
// @Param gameID path string true "Game ID"
// @Success 200 {object} handlers.SuccessResponse "Registrations"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Unknown game"
// @Router /admin/games/{gameID}/registrations [get]
func NewListGameRegistrationsHandler(svc GameRegistrationsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, err := uuid.Parse(chi.URLParam(r, "gameID"))
		if err != nil {
			writeErrorCode(w, http.StatusNotFound, services.CodeInvalidToken, services.ErrInvalidToken.Message)
			return
		}

		regs, err := svc.ListRegistrations(r.Context(), gameID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeData(w, http.StatusOK, regs)
	}
}
