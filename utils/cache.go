// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"shiftflow/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// SessionClient is the dedicated client for session state.
	SessionClient *redis.Client
	// RateLimitClient backs the per-client request limiter.
	RateLimitClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients the service depends on.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	SessionClient = newRedisClient(config.AppConfig.RedisSessionDB)
	RateLimitClient = newRedisClient(config.AppConfig.RedisRateLimitDB)
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	}
	return CacheClient
}

// GetSessionClient returns the Redis client holding session state.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		SessionClient = newRedisClient(config.AppConfig.RedisSessionDB)
	}
	return SessionClient
}

// GetRateLimitClient returns the Redis client for rate-limit bookkeeping.
func GetRateLimitClient() *redis.Client {
	if RateLimitClient == nil {
		RateLimitClient = newRedisClient(config.AppConfig.RedisRateLimitDB)
	}
	return RateLimitClient
}
