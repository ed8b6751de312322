package redis

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"wedding-marketplace-api/logger"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

const blacklistPrefix = "blacklist:"

// InitRedis connects the shared client. The blacklist degrades to a
// no-op when redis is not configured, so the API can run without it.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		logger.Log.Warn().Msg("REDIS_ADDR not set, token blacklist disabled")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	if _, err := Client.Ping(Ctx).Result(); err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	logger.Log.Info().Str("addr", addr).Msg("connected to redis")
}

// BlacklistToken stores a revoked token until it would have expired
// anyway.
func BlacklistToken(token string, ttl time.Duration) error {
	if Client == nil || ttl <= 0 {
		return nil
	}
	return Client.Set(Ctx, blacklistPrefix+token, "revoked", ttl).Err()
}

// IsTokenBlacklisted reports whether the token was revoked via logout.
func IsTokenBlacklisted(token string) bool {
	if Client == nil {
		return false
	}
	n, err := Client.Exists(Ctx, blacklistPrefix+token).Result()
	if err != nil {
		logger.Log.Error().Err(err).Msg("redis blacklist lookup failed")
		return false
	}
	return n > 0
}
