package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/canchaleconte/cancha-api/internal/models"
	"github.com/canchaleconte/cancha-api/internal/services"
)

func TestMyRegistrationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	token := strings.Repeat("ab", 32)

	tests := []struct {
		name         string
		mockSetup    func(m *MockRegistrationViewer)
		expectedCode int
	}{
		{
			name: "found",
			mockSetup: func(m *MockRegistrationViewer) {
				m.EXPECT().GetByToken(gomock.Any(), token).
					Return(&models.RegistrationDetails{
						PlayerName:    "Nico",
						PaymentStatus: models.PaymentPaid,
						GameTitle:     "Partido del sábado",
						GameDate:      time.Now().Add(48 * time.Hour),
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "unknown token",
			mockSetup: func(m *MockRegistrationViewer) {
				m.EXPECT().GetByToken(gomock.Any(), token).
					Return(nil, services.ErrInvalidToken)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegistrationViewer(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Get("/mi-registro/{token}", NewMyRegistrationHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/mi-registro/"+token, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestCancelByTokenHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	token := strings.Repeat("ab", 32)

	tests := []struct {
		name         string
		inputBody    string
		mockSetup    func(m *MockTokenCanceller)
		expectedCode int
	}{
		{
			name:      "cancelled with refund",
			inputBody: `{"reason":"no puedo ir"}`,
			mockSetup: func(m *MockTokenCanceller) {
				m.EXPECT().CancelByToken(gomock.Any(), token, "no puedo ir").
					Return(&models.RefundInfo{Eligible: true, Reason: "pago devuelto por cancelación anticipada"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "empty body is fine",
			inputBody: "",
			mockSetup: func(m *MockTokenCanceller) {
				m.EXPECT().CancelByToken(gomock.Any(), token, "").
					Return(&models.RefundInfo{Eligible: false, Reason: "no hay pago registrado"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "window closed",
			inputBody: "",
			mockSetup: func(m *MockTokenCanceller) {
				m.EXPECT().CancelByToken(gomock.Any(), token, "").
					Return(nil, services.ErrCancellationNotAllowed)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTokenCanceller(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Post("/mi-registro/{token}/cancel", NewCancelByTokenHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPost, "/mi-registro/"+token+"/cancel", bytes.NewBufferString(tt.inputBody))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestCancelRegistrationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	shareToken := "a1b2c3d4e5f60718"

	tests := []struct {
		name         string
		query        string
		mockSetup    func(m *MockPhoneCanceller)
		expectedCode int
	}{
		{
			name:  "cancelled",
			query: "?phone=%2B5491155550000",
			mockSetup: func(m *MockPhoneCanceller) {
				m.EXPECT().CancelByPhone(gomock.Any(), shareToken, "+5491155550000", "").
					Return(&models.RefundInfo{Eligible: false, Reason: "no hay pago registrado"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "reason forwarded",
			query: "?phone=%2B5491155550000&reason=lluvia",
			mockSetup: func(m *MockPhoneCanceller) {
				m.EXPECT().CancelByPhone(gomock.Any(), shareToken, "+5491155550000", "lluvia").
					Return(&models.RefundInfo{Eligible: false, Reason: "no hay pago registrado"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing phone",
			query:        "",
			mockSetup:    func(m *MockPhoneCanceller) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "phone not registered",
			query: "?phone=%2B5491155550000",
			mockSetup: func(m *MockPhoneCanceller) {
				m.EXPECT().CancelByPhone(gomock.Any(), shareToken, "+5491155550000", "").
					Return(nil, services.ErrInvalidToken)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPhoneCanceller(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Delete("/games/{shareToken}/register", NewCancelRegistrationHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, "/games/"+shareToken+"/register"+tt.query, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode == http.StatusOK {
				var resp SuccessResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.True(t, resp.Success)
			}
		})
	}
}
