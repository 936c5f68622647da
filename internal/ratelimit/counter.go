package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canchaleconte/cancha-api/internal/logger"
)

const counterKeyPrefix = "cancha:rl:"

// CounterLimiter enforces fixed-window counters in Redis for the public
// endpoints. Redis is shared across instances, so the effective limit holds
// in a horizontally scaled deployment. Like the login limiter it fails open
// on storage errors.
type CounterLimiter struct {
	rdb     *redis.Client
	configs map[Action]Config
}

// NewCounterLimiter creates a counter limiter with the default per-action
// configs.
func NewCounterLimiter(rdb *redis.Client) *CounterLimiter {
	return &CounterLimiter{rdb: rdb, configs: DefaultConfigs}
}

// Check increments the window counter for (action, ip) and evaluates the
// limit. The first increment of a window sets the key TTL; RetryAfter for a
// blocked caller is the remaining TTL scaled by the backoff multiplier.
func (l *CounterLimiter) Check(ctx context.Context, r *http.Request, action Action) Result {
	cfg, ok := l.configs[action]
	if !ok {
		cfg = DefaultConfigs[ActionAPI]
	}

	ip := ClientIP(r)
	key := fmt.Sprintf("%s%s:%s", counterKeyPrefix, action, ip)
	now := time.Now()

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		logger.Log.Errorw("rate limit counter increment failed, allowing request",
			"action", action, "ip", ip, "error", err)
		return Result{Allowed: true, Remaining: cfg.Limit, ResetTime: now.Add(cfg.Window)}
	}

	if count == 1 {
		if err := l.rdb.Expire(ctx, key, cfg.Window).Err(); err != nil {
			logger.Log.Errorw("rate limit counter expire failed", "key", key, "error", err)
		}
	}

	ttl, err := l.rdb.TTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		ttl = cfg.Window
	}
	resetTime := now.Add(ttl)

	if int(count) <= cfg.Limit {
		return Result{
			Allowed:   true,
			Remaining: cfg.Limit - int(count),
			ResetTime: resetTime,
		}
	}

	over := int(count) - cfg.Limit - 1
	return Result{
		Allowed:    false,
		Remaining:  0,
		ResetTime:  resetTime,
		RetryAfter: backoffDelay(cfg.BaseDelay, over),
	}
}
