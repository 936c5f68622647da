package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/canchaleconte/cancha-api/internal/models"
	"github.com/canchaleconte/cancha-api/internal/repositories"
	"github.com/canchaleconte/cancha-api/internal/services"
)

func TestGameService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	valid := services.CreateGameInput{
		Title:      "Partido del sábado",
		GameDate:   time.Now().Add(72 * time.Hour),
		MinPlayers: 8,
		MaxPlayers: 10,
		TeamAName:  "Rojo",
		TeamBName:  "Azul",
	}

	tests := []struct {
		name     string
		input    services.CreateGameInput
		saveErr  error
		wantCode string
		wantErr  error
	}{
		{
			name:  "successful creation",
			input: valid,
		},
		{
			name: "empty title",
			input: services.CreateGameInput{
				Title:      "   ",
				GameDate:   valid.GameDate,
				MaxPlayers: 10,
			},
			wantCode: services.CodeValidation,
		},
		{
			name: "too few players",
			input: services.CreateGameInput{
				Title:      "Partido",
				GameDate:   valid.GameDate,
				MaxPlayers: 1,
			},
			wantCode: services.CodeValidation,
		},
		{
			name: "min above max",
			input: services.CreateGameInput{
				Title:      "Partido",
				GameDate:   valid.GameDate,
				MinPlayers: 12,
				MaxPlayers: 10,
			},
			wantCode: services.CodeValidation,
		},
		{
			name: "past date",
			input: services.CreateGameInput{
				Title:      "Partido",
				GameDate:   time.Now().Add(-time.Hour),
				MaxPlayers: 10,
			},
			wantCode: services.CodeValidation,
		},
		{
			name:    "save error",
			input:   valid,
			saveErr: errors.New("db error"),
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLister := services.NewMockGameLister(ctrl)
			mockWriter := services.NewMockGameWriter(ctrl)
			mockRegs := services.NewMockRegistrationLister(ctrl)
			svc := services.NewGameService(mockLister, mockWriter, mockRegs)

			if tt.wantCode == "" {
				mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(tt.saveErr)
			}

			game, err := svc.Create(context.Background(), tt.input)
			if tt.wantCode != "" {
				var svcErr *services.Error
				assert.ErrorAs(t, err, &svcErr)
				assert.Equal(t, tt.wantCode, svcErr.Code)
				return
			}
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "Partido del sábado", game.Title)
			assert.Equal(t, models.GameStatusOpen, game.Status)
			assert.Len(t, game.ShareToken, 16)
		})
	}
}

func TestGameService_Create_RetriesTokenCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLister := services.NewMockGameLister(ctrl)
	mockWriter := services.NewMockGameWriter(ctrl)
	mockRegs := services.NewMockRegistrationLister(ctrl)
	svc := services.NewGameService(mockLister, mockWriter, mockRegs)

	var tokens []string
	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *models.GameDB) error {
			tokens = append(tokens, g.ShareToken)
			if len(tokens) == 1 {
				return repositories.ErrDuplicateKey
			}
			return nil
		}).
		Times(2)

	game, err := svc.Create(context.Background(), services.CreateGameInput{
		Title:      "Partido",
		GameDate:   time.Now().Add(72 * time.Hour),
		MaxPlayers: 10,
	})
	assert.NoError(t, err)
	assert.Len(t, tokens, 2)
	assert.NotEqual(t, tokens[0], tokens[1])
	assert.Equal(t, tokens[1], game.ShareToken)
}

func TestGameService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLister := services.NewMockGameLister(ctrl)
	mockWriter := services.NewMockGameWriter(ctrl)
	mockRegs := services.NewMockRegistrationLister(ctrl)
	svc := services.NewGameService(mockLister, mockWriter, mockRegs)

	summaries := []models.GameSummary{
		{GameDB: models.GameDB{GameID: uuid.New(), Title: "Partido"}, RegisteredCount: 7},
	}
	mockLister.EXPECT().ListWithCounts(gomock.Any()).Return(summaries, nil)

	got, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, summaries, got)
}

func TestGameService_ListRegistrations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gameID := uuid.New()

	tests := []struct {
		name    string
		game    *models.GameDB
		wantErr error
	}{
		{
			name: "known game",
			game: &models.GameDB{GameID: gameID, Title: "Partido"},
		},
		{
			name:    "unknown game",
			game:    nil,
			wantErr: services.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLister := services.NewMockGameLister(ctrl)
			mockWriter := services.NewMockGameWriter(ctrl)
			mockRegs := services.NewMockRegistrationLister(ctrl)
			svc := services.NewGameService(mockLister, mockWriter, mockRegs)

			mockLister.EXPECT().GetByID(gomock.Any(), gameID).Return(tt.game, nil)
			if tt.game != nil {
				regs := []models.RegistrationDB{{RegistrationID: uuid.New(), GameID: gameID}}
				mockRegs.EXPECT().ListByGame(gomock.Any(), gameID).Return(regs, nil)
			}

			got, err := svc.ListRegistrations(context.Background(), gameID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Len(t, got, 1)
		})
	}
}
