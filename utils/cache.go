// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"webmaker/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient is the Redis client backing plan sessions.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client for plan session caching.
// A missing or unreachable Redis is not fatal: the caller falls back to the
// in-memory session store, so the pipeline stays usable without credentials.
func InitSessionCache() error {
	if config.AppConfig.RedisAddr == "" {
		return redis.ErrClosed
	}
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		SessionCacheClient = nil
		return err
	}
	return nil
}

// GetSessionCacheClient returns the Redis client for plan session caching,
// or nil when Redis is not configured.
func GetSessionCacheClient() *redis.Client {
	return SessionCacheClient
}
