package config

// Redis backs the two optional middlewares: response caching for the public
// directory endpoints and rate limiting for the credential endpoints.  If no
// server is reachable at startup the constructor returns nil and both
// middlewares degrade to pass-through; the gateway needs no Redis to enforce
// access control.

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a Redis client from the environment:
//
//	REDIS_ADDR     – host:port (default "localhost:6379")
//	REDIS_PASSWORD – optional password
//	REDIS_DB       – database number (default 0)
//
// The connection is verified with a short ping; nil is returned on failure so
// callers can disable the dependent features instead of crashing.
func NewRedisClient() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     getenv("REDIS_ADDR", "localhost:6379"),
		Password: getenv("REDIS_PASSWORD", ""),
		DB:       envInt("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
