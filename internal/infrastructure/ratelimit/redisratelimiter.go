package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"subtrack/internal/shared/biztime"
	"subtrack/internal/shared/logger"
)

// Window is a single fixed-window budget.
type Window struct {
	Duration time.Duration
	Limit    int
}

// RedisRateLimiter enforces fixed-window budgets per key. Each window keeps a
// counter keyed by the window start; INCR and EXPIRE run in one pipeline so a
// crashed request cannot leave a counter without a TTL.
type RedisRateLimiter struct {
	client  *redis.Client
	prefix  string
	windows []Window
	logger  logger.Interface
}

func NewRedisRateLimiter(client *redis.Client, prefix string, windows ...Window) *RedisRateLimiter {
	return &RedisRateLimiter{
		client:  client,
		prefix:  prefix,
		windows: windows,
		logger:  logger.NewLogger().With("component", "ratelimit.redis"),
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := biztime.NowUTC()

	pipe := l.client.Pipeline()
	counters := make([]*redis.IntCmd, len(l.windows))
	for i, w := range l.windows {
		windowKey := l.buildKey(key, w, now)
		counters[i] = pipe.Incr(ctx, windowKey)
		pipe.Expire(ctx, windowKey, w.Duration+time.Second)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		l.logger.Errorw("rate limit check failed", "error", err, "key", key)
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}

	for i, w := range l.windows {
		if counters[i].Val() > int64(w.Limit) {
			return false, nil
		}
	}
	return true, nil
}

func (l *RedisRateLimiter) buildKey(key string, w Window, now time.Time) string {
	windowStart := now.Truncate(w.Duration).Unix()
	return fmt.Sprintf("%s:%s:%d:%d", l.prefix, key, int64(w.Duration.Seconds()), windowStart)
}
