// File: utils/throttle.go
package utils

import (
	"context"
	"fmt"
	"time"

	"shiftflow/config"

	"github.com/go-redis/redis/v8"
)

const loginFailPrefix = "loginfail:"

// LoginThrottle counts failed login attempts per client in Redis and
// locks logins out once the configured limit is reached. Counters carry
// their own expiry, so a lockout always clears after the window.
type LoginThrottle struct {
	client *redis.Client
}

// NewLoginThrottle returns a throttle backed by the rate-limit Redis
// client.
func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{client: client}
}

func loginAttemptLimit() int64 {
	limit := config.AppConfig.MaxLoginAttempts
	if limit <= 0 {
		limit = 5
	}
	return int64(limit)
}

func lockoutWindow() time.Duration {
	minutes := config.AppConfig.LoginLockoutMinutes
	if minutes <= 0 {
		minutes = 15
	}
	return time.Duration(minutes) * time.Minute
}

// Blocked reports whether the client has exhausted its attempts.
func (t *LoginThrottle) Blocked(ctx context.Context, key string) (bool, error) {
	count, err := t.client.Get(ctx, loginFailPrefix+key).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read login attempts: %w", err)
	}
	return count >= loginAttemptLimit(), nil
}

// RecordFailure bumps the failure counter. Each failure refreshes the
// lockout window.
func (t *LoginThrottle) RecordFailure(ctx context.Context, key string) error {
	redisKey := loginFailPrefix + key
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, lockoutWindow())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record login failure: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, key string) error {
	return t.client.Del(ctx, loginFailPrefix+key).Err()
}
