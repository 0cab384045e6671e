package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter implements a fixed-window request counter.
// Key format: ratelimit:<client_key>:<window_start_unix>
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRateLimiter creates a RateLimiter allowing limit requests per window.
func NewRateLimiter(client *redis.Client, limit int64, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 100
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{client: client, limit: limit, window: window}
}

// Allow counts a request for clientKey and reports whether it is still
// within the window's budget.
func (l *RateLimiter) Allow(ctx context.Context, clientKey string) (bool, error) {
	key := l.key(clientKey, time.Now())

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		// First hit in the window owns the expiry.
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.limit, nil
}

func (l *RateLimiter) key(clientKey string, now time.Time) string {
	windowStart := now.Unix() - now.Unix()%int64(l.window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%d", clientKey, windowStart)
}
