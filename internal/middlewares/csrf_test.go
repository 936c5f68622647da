package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/canchaleconte/cancha-api/internal/sessiontoken"
)

func TestCSRFMiddleware(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		cookie           string
		header           string
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name:             "GET is exempt",
			method:           http.MethodGet,
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name:             "matching cookie and header",
			method:           http.MethodPost,
			cookie:           "csrf-value",
			header:           "csrf-value",
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name:           "missing header",
			method:         http.MethodPost,
			cookie:         "csrf-value",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "missing cookie",
			method:         http.MethodPost,
			header:         "csrf-value",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "mismatched values",
			method:         http.MethodPost,
			cookie:         "csrf-value",
			header:         "another-value",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "DELETE is enforced",
			method:         http.MethodDelete,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/api/v1/games/token/register", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: sessiontoken.CSRFCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set(sessiontoken.CSRFHeaderName, tt.header)
			}
			rec := httptest.NewRecorder()

			CSRFMiddleware()(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
		})
	}
}
