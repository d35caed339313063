package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// BalanceCache keeps recently read balances in redis so the hot
// GET /api/user/balance path does not hit postgres on every poll.
type BalanceCache struct {
	R   *redis.Client
	TTL time.Duration
}

func New(r *redis.Client, ttl time.Duration) *BalanceCache {
	return &BalanceCache{R: r, TTL: ttl}
}

func key(userID string) string { return "wallet:balance:" + userID }

// Get returns (balance, true) on a cache hit.
func (c *BalanceCache) Get(ctx context.Context, userID string) (float64, bool, error) {
	v, err := c.R.Get(ctx, key(userID)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	balance, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false, err
	}
	return balance, true, nil
}

// Set stores a balance with the configured TTL.
func (c *BalanceCache) Set(ctx context.Context, userID string, balance float64) error {
	return c.R.Set(ctx, key(userID), strconv.FormatFloat(balance, 'f', -1, 64), c.TTL).Err()
}

// Invalidate drops the cached balance after any mutation.
func (c *BalanceCache) Invalidate(ctx context.Context, userID string) error {
	return c.R.Del(ctx, key(userID)).Err()
}
