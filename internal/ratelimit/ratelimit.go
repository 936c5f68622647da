package ratelimit

import (
	"net/http"
	"strings"
	"time"
)

// Action identifies a rate-limited endpoint class with its own limits.
type Action string

const (
	ActionLogin    Action = "login"
	ActionRegister Action = "register"
	ActionCancel   Action = "cancel"
	ActionWebhook  Action = "webhook"
	ActionAPI      Action = "api"
)

// Config is the per-action rate limit: Limit attempts per Window, with
// BaseDelay as the backoff unit once the limit is exceeded.
type Config struct {
	Limit     int
	Window    time.Duration
	BaseDelay time.Duration
}

// DefaultConfigs holds the per-action limits.
var DefaultConfigs = map[Action]Config{
	ActionLogin:    {Limit: 5, Window: 15 * time.Minute, BaseDelay: time.Minute},
	ActionRegister: {Limit: 10, Window: time.Hour, BaseDelay: time.Minute},
	ActionCancel:   {Limit: 5, Window: time.Hour, BaseDelay: time.Minute},
	ActionWebhook:  {Limit: 100, Window: time.Minute, BaseDelay: 10 * time.Second},
	ActionAPI:      {Limit: 300, Window: 15 * time.Minute, BaseDelay: 10 * time.Second},
}

// maxBackoffMultiplier caps the exponential backoff so repeat offenders face
// escalating cooldowns bounded above.
const maxBackoffMultiplier = 8

// Result is the outcome of a rate limit check.
type Result struct {
	Allowed    bool
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// backoffDelay computes the cooldown for a caller that is `over` attempts past
// the limit: base * 2^over, capped at base * maxBackoffMultiplier.
func backoffDelay(base time.Duration, over int) time.Duration {
	multiplier := 1
	for i := 0; i < over && multiplier < maxBackoffMultiplier; i++ {
		multiplier *= 2
	}
	return base * time.Duration(multiplier)
}

// ClientIP extracts the caller's IP: the first X-Forwarded-For entry, then
// X-Real-IP, defaulting to loopback when neither is present.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	return "127.0.0.1"
}
