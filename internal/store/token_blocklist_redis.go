package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-note-keeper/internal/config"
)

const revokedTokenKeyPrefix = "revoked_token:"

// NewRedisClient creates and pings a Redis client.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	return rdb, nil
}

// redisTokenBlocklist stores one key per revoked token id. The key expires
// together with the token, so Redis drops it once it no longer matters.
type redisTokenBlocklist struct {
	rdb *redis.Client
	now func() time.Time
}

func NewRedisTokenBlocklist(rdb *redis.Client) TokenBlocklist {
	return &redisTokenBlocklist{rdb: rdb, now: time.Now}
}

func (r *redisTokenBlocklist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}

	if err := r.rdb.Set(ctx, revokedTokenKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("error revoking token: %w", err)
	}
	return nil
}

func (r *redisTokenBlocklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.rdb.Exists(ctx, revokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("error checking revoked token: %w", err)
	}
	return n > 0, nil
}
