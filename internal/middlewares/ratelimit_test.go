package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/canchaleconte/cancha-api/internal/ratelimit"
)

func TestRateLimitMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		result           ratelimit.Result
		expectedStatus   int
		expectNextCalled bool
		wantRetryAfter   string
	}{
		{
			name:             "allowed",
			result:           ratelimit.Result{Allowed: true, Remaining: 3},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name:           "limited",
			result:         ratelimit.Result{Allowed: false, RetryAfter: 2 * time.Minute},
			expectedStatus: http.StatusTooManyRequests,
			wantRetryAfter: "120",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLimiter := NewMockLimiter(ctrl)
			mockLimiter.EXPECT().
				Check(gomock.Any(), gomock.Any(), ratelimit.ActionRegister).
				Return(tt.result)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/games/token/register", nil)
			rec := httptest.NewRecorder()

			RateLimitMiddleware(mockLimiter, ratelimit.ActionRegister)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			assert.Equal(t, tt.wantRetryAfter, rec.Header().Get("Retry-After"))
		})
	}
}
