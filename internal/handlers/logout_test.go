package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/canchaleconte/cancha-api/internal/models"
	"github.com/canchaleconte/cancha-api/internal/sessiontoken"
)

func testAuthContext() *models.AuthContext {
	return &models.AuthContext{
		User:    &models.AdminUserDB{UserID: uuid.New(), Role: models.RoleAdmin, IsActive: true},
		Session: &models.SessionDB{SessionID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)},
	}
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authCtx := testAuthContext()

	mockSvc := NewMockLogouter(ctrl)
	mockSvc.EXPECT().
		Logout(gomock.Any(), authCtx.Session.SessionID, gomock.Any()).
		Return(nil)
	mockSessions := NewMockSessionResolver(ctrl)
	mockSessions.EXPECT().Validate(gomock.Any(), "sometoken").Return(authCtx, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessiontoken.SessionCookieName, Value: "sometoken"})
	rec := httptest.NewRecorder()

	NewLogoutHandler(mockSvc, mockSessions, false)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	cleared := map[string]bool{}
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			cleared[c.Name] = true
		}
	}
	assert.True(t, cleared[sessiontoken.SessionCookieName])
	assert.True(t, cleared[sessiontoken.CSRFCookieName])
}

func TestLogoutHandler_GETRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authCtx := testAuthContext()

	mockSvc := NewMockLogouter(ctrl)
	mockSvc.EXPECT().
		Logout(gomock.Any(), authCtx.Session.SessionID, gomock.Any()).
		Return(nil)
	mockSessions := NewMockSessionResolver(ctrl)
	mockSessions.EXPECT().Validate(gomock.Any(), "sometoken").Return(authCtx, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessiontoken.SessionCookieName, Value: "sometoken"})
	rec := httptest.NewRecorder()

	NewLogoutHandler(mockSvc, mockSessions, false)(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestLogoutHandler_GETRedirectsWithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		cookie    string
		mockSetup func(m *MockSessionResolver)
	}{
		{
			name:      "no cookie at all",
			mockSetup: func(m *MockSessionResolver) {},
		},
		{
			name:   "stale cookie",
			cookie: "expired",
			mockSetup: func(m *MockSessionResolver) {
				m.EXPECT().Validate(gomock.Any(), "expired").Return(nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLogouter(ctrl)
			mockSessions := NewMockSessionResolver(ctrl)
			tt.mockSetup(mockSessions)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/logout", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: sessiontoken.SessionCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			NewLogoutHandler(mockSvc, mockSessions, false)(rec, req)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get("Location"))
		})
	}
}

func TestLogoutHandler_POSTUnauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLogouter(ctrl)
	mockSessions := NewMockSessionResolver(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil).
		WithContext(context.Background())
	rec := httptest.NewRecorder()

	NewLogoutHandler(mockSvc, mockSessions, false)(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
