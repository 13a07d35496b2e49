package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// SettlementCache implements ports.SettlementCache using Redis. It is a
// fast-path duplicate absorber for confirmation redeliveries; the sold
// flag in PostgreSQL stays authoritative.
type SettlementCache struct {
	client *goredis.Client
	prefix string
}

// NewSettlementCache creates a new Redis-backed settlement cache.
func NewSettlementCache(client *goredis.Client) *SettlementCache {
	return &SettlementCache{
		client: client,
		prefix: "settled:",
	}
}

// IsSettled reports whether a settlement for this gift was already applied.
func (c *SettlementCache) IsSettled(ctx context.Context, giftID string) (bool, error) {
	err := c.client.Get(ctx, c.prefix+giftID).Err()
	if err != nil {
		if err == goredis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("redis settlement get: %w", err)
	}
	return true, nil
}

// MarkSettled records a completed settlement with TTL.
func (c *SettlementCache) MarkSettled(ctx context.Context, giftID string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+giftID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis settlement set: %w", err)
	}
	return nil
}
