package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	attemptWindow = 15 * time.Minute
	maxAttempts   = 10
)

// LoginLimiter counts failed login attempts per identity in a fixed
// window, backed by Redis. Key format: login_attempts:<identity>
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// TooManyAttempts reports whether the identity exhausted its window.
func (l *LoginLimiter) TooManyAttempts(ctx context.Context, identity string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(identity)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("limiter check: %w", err)
	}
	return n >= maxAttempts, nil
}

// RecordFailure counts one failed attempt. The window starts at the first
// failure and is not extended by later ones.
func (l *LoginLimiter) RecordFailure(ctx context.Context, identity string) error {
	key := l.key(identity)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("limiter incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, attemptWindow).Err(); err != nil {
			return fmt.Errorf("limiter expire: %w", err)
		}
	}
	return nil
}

// Clear resets the identity's counter after a successful login.
func (l *LoginLimiter) Clear(ctx context.Context, identity string) error {
	return l.client.Del(ctx, l.key(identity)).Err()
}

func (l *LoginLimiter) key(identity string) string {
	return "login_attempts:" + identity
}
