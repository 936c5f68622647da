package middlewares

import (
	"errors"
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

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminCtx := &models.AuthContext{
		User:    &models.AdminUserDB{UserID: uuid.New(), Role: models.RoleAdmin, IsActive: true},
		Session: &models.SessionDB{SessionID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)},
	}
	viewerCtx := &models.AuthContext{
		User:    &models.AdminUserDB{UserID: uuid.New(), Role: models.RoleViewer, IsActive: true},
		Session: &models.SessionDB{SessionID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)},
	}

	tests := []struct {
		name             string
		withCookie       bool
		requiredRole     string
		mockSetup        func(m *MockAuthenticator)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name:             "no cookie",
			withCookie:       false,
			mockSetup:        func(m *MockAuthenticator) {},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name:       "invalid session",
			withCookie: true,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().ValidateAndRefresh(gomock.Any(), "sometoken").
					Return(nil, "", nil)
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name:       "validation infrastructure error",
			withCookie: true,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().ValidateAndRefresh(gomock.Any(), "sometoken").
					Return(nil, "", errors.New("db error"))
			},
			expectedStatus:   http.StatusInternalServerError,
			expectNextCalled: false,
		},
		{
			name:       "valid session",
			withCookie: true,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().ValidateAndRefresh(gomock.Any(), "sometoken").
					Return(adminCtx, "", nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name:         "role satisfied",
			withCookie:   true,
			requiredRole: models.RoleAdmin,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().ValidateAndRefresh(gomock.Any(), "sometoken").
					Return(adminCtx, "", nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name:         "insufficient role",
			withCookie:   true,
			requiredRole: models.RoleAdmin,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().ValidateAndRefresh(gomock.Any(), "sometoken").
					Return(viewerCtx, "", nil)
			},
			expectedStatus:   http.StatusForbidden,
			expectNextCalled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth := NewMockAuthenticator(ctrl)
			tt.mockSetup(mockAuth)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.NotNil(t, AuthContextFrom(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/games", nil)
			if tt.withCookie {
				req.AddCookie(&http.Cookie{Name: sessiontoken.SessionCookieName, Value: "sometoken"})
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(mockAuth, false, tt.requiredRole)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
		})
	}
}

func TestAuthMiddleware_RefreshExtendsCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expiresAt := time.Now().Add(2 * time.Hour)
	authCtx := &models.AuthContext{
		User:    &models.AdminUserDB{UserID: uuid.New(), Role: models.RoleAdmin, IsActive: true},
		Session: &models.SessionDB{SessionID: uuid.New(), ExpiresAt: expiresAt},
	}

	mockAuth := NewMockAuthenticator(ctrl)
	mockAuth.EXPECT().ValidateAndRefresh(gomock.Any(), "sometoken").
		Return(authCtx, "freshtoken", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/validate", nil)
	req.AddCookie(&http.Cookie{Name: sessiontoken.SessionCookieName, Value: "sometoken"})
	rec := httptest.NewRecorder()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	AuthMiddleware(mockAuth, false, "")(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessiontoken.SessionCookieName {
			sessionCookie = c
		}
	}
	assert.NotNil(t, sessionCookie)
	assert.Equal(t, "freshtoken", sessionCookie.Value)
	assert.Greater(t, sessionCookie.MaxAge, 0)
}

func TestAuthMiddleware_InvalidSessionClearsCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := NewMockAuthenticator(ctrl)
	mockAuth.EXPECT().ValidateAndRefresh(gomock.Any(), "stale").
		Return(nil, "", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/games", nil)
	req.AddCookie(&http.Cookie{Name: sessiontoken.SessionCookieName, Value: "stale"})
	rec := httptest.NewRecorder()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	AuthMiddleware(mockAuth, false, "")(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessiontoken.SessionCookieName {
			sessionCookie = c
		}
	}
	assert.NotNil(t, sessionCookie)
	assert.Empty(t, sessionCookie.Value)
	assert.Negative(t, sessionCookie.MaxAge)
}
