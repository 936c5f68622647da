package ratelimit

import (
	"context"
	"net/http"
	"time"

	"github.com/canchaleconte/cancha-api/internal/logger"
	"github.com/canchaleconte/cancha-api/internal/models"
)

// AttemptCounter counts failed login attempts within a window.
type AttemptCounter interface {
	CountFailedSince(ctx context.Context, ip string, since time.Time) (int, error)
}

// AttemptWriter appends and prunes the login attempt log.
type AttemptWriter interface {
	Save(ctx context.Context, attempt *models.LoginAttemptDB) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// attemptRetention is how long audit rows are kept before cleanup.
const attemptRetention = 30 * 24 * time.Hour

// LoginLimiter enforces a sliding window over the persisted login attempt
// log. The limiter is deliberately fail-open: a storage failure must never
// become the attack vector nor block legitimate traffic, so lookup errors
// allow the attempt and record errors are swallowed. Authentication itself
// remains fail-closed.
type LoginLimiter struct {
	counter AttemptCounter
	writer  AttemptWriter
	cfg     Config
	now     func() time.Time
}

// NewLoginLimiter creates a login limiter with the default login config.
func NewLoginLimiter(counter AttemptCounter, writer AttemptWriter) *LoginLimiter {
	return &LoginLimiter{
		counter: counter,
		writer:  writer,
		cfg:     DefaultConfigs[ActionLogin],
		now:     time.Now,
	}
}

// Check evaluates the sliding window for the request's IP. Once the limit is
// exceeded, RetryAfter grows exponentially with how far past the limit the
// caller is, capped at the maximum multiplier.
func (l *LoginLimiter) Check(ctx context.Context, r *http.Request) Result {
	now := l.now()
	ip := ClientIP(r)

	count, err := l.counter.CountFailedSince(ctx, ip, now.Add(-l.cfg.Window))
	if err != nil {
		logger.Log.Errorw("login rate limit lookup failed, allowing request", "ip", ip, "error", err)
		return Result{Allowed: true, Remaining: l.cfg.Limit, ResetTime: now.Add(l.cfg.Window)}
	}

	if count < l.cfg.Limit {
		return Result{
			Allowed:   true,
			Remaining: l.cfg.Limit - count,
			ResetTime: now.Add(l.cfg.Window),
		}
	}

	over := count - l.cfg.Limit
	return Result{
		Allowed:    false,
		Remaining:  0,
		ResetTime:  now.Add(l.cfg.Window),
		RetryAfter: backoffDelay(l.cfg.BaseDelay, over),
	}
}

// RecordAttempt appends an audit row. Failures are logged and swallowed.
func (l *LoginLimiter) RecordAttempt(ctx context.Context, r *http.Request, email string, success bool) {
	attempt := &models.LoginAttemptDB{
		IPAddress: ClientIP(r),
		Email:     email,
		Success:   success,
		UserAgent: r.UserAgent(),
	}

	if err := l.writer.Save(ctx, attempt); err != nil {
		logger.Log.Errorw("failed to record login attempt", "ip", attempt.IPAddress, "error", err)
	}
}

// CleanupOldAttempts purges attempt rows past the retention window and
// returns the count removed, or zero when the purge fails.
func (l *LoginLimiter) CleanupOldAttempts(ctx context.Context) int64 {
	removed, err := l.writer.DeleteOlderThan(ctx, l.now().Add(-attemptRetention))
	if err != nil {
		logger.Log.Errorw("failed to clean up login attempts", "error", err)
		return 0
	}
	return removed
}
