package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canchaleconte/cancha-api/internal/models"
	"github.com/canchaleconte/cancha-api/internal/services"
)

// FriendRegistrar defines the interface that the registration service must
// implement for the public sign-up endpoint.
type FriendRegistrar interface {
	RegisterFriend(ctx context.Context, shareToken string, input services.RegisterInput) (*models.RegistrationDB, string, error)
}

// RegisterFriendRequest represents the JSON body for a friend registration
// swagger:model RegisterFriendRequest
type RegisterFriendRequest struct {
	// Player display name
	// required: true
	// default: Nico
	PlayerName string `json:"player_name"`

	// Player phone in international format
	// required: true
	// default: +5491155550000
	PlayerPhone string `json:"player_phone"`
}

// RegisterFriendResponse is the payload of a successful registration
// swagger:model RegisterFriendResponse
type RegisterFriendResponse struct {
	PlayerName    string `json:"player_name"`
	ManagementURL string `json:"management_url"`
}

// NewRegisterFriendHandler returns an HTTP handler for friend self-registration.
// @Summary Register for a game
// @Description Register a player for the game behind a share link
// @Tags public
// @Accept json
// @Produce json
// @Param shareToken path string true "Game share token"
// @Param registerRequest body handlers.RegisterFriendRequest true "Player data"
// @Success 201 {object} handlers.SuccessResponse "Registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 404 {object} handlers.ErrorResponse "Unknown or closed game"
// @Failure 409 {object} handlers.ErrorResponse "Game full or phone already registered"
// @Router /games/{shareToken}/register [post]
func NewRegisterFriendHandler(svc FriendRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterFriendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorCode(w, http.StatusBadRequest, services.CodeValidation, "Cuerpo de la solicitud inválido")
			return
		}

		reg, managementURL, err := svc.RegisterFriend(r.Context(), chi.URLParam(r, "shareToken"), services.RegisterInput{
			PlayerName:  req.PlayerName,
			PlayerPhone: req.PlayerPhone,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeMessage(w, http.StatusCreated, RegisterFriendResponse{
			PlayerName:    reg.PlayerName,
			ManagementURL: managementURL,
		}, "¡Listo! Quedaste anotado")
	}
}
