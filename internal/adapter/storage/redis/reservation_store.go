package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ReservationStore implements ports.ReservationStore using Redis SET NX.
// The key holds the reserving buyer's id so a buyer re-requesting an
// invoice for the same gift refreshes their own hold instead of being
// rejected by it.
type ReservationStore struct {
	client *goredis.Client
	prefix string
}

// NewReservationStore creates a new Redis-backed reservation store.
func NewReservationStore(client *goredis.Client) *ReservationStore {
	return &ReservationStore{
		client: client,
		prefix: "reservation:",
	}
}

// Reserve atomically places a hold on the gift for the buyer.
// Returns true if the hold was acquired or already belongs to this buyer.
func (s *ReservationStore) Reserve(ctx context.Context, giftID, buyerID string, ttl time.Duration) (bool, error) {
	key := s.prefix + giftID
	result, err := s.client.SetArgs(ctx, key, buyerID, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key exists. Same buyer refreshing their own hold is fine.
			holder, getErr := s.client.Get(ctx, key).Result()
			if getErr != nil {
				if getErr == goredis.Nil {
					// Hold expired between SET and GET; treat as contended.
					return false, nil
				}
				return false, fmt.Errorf("redis reservation holder check: %w", getErr)
			}
			if holder == buyerID {
				if expErr := s.client.Expire(ctx, key, ttl).Err(); expErr != nil {
					return false, fmt.Errorf("redis reservation refresh: %w", expErr)
				}
				return true, nil
			}
			return false, nil
		}
		return false, fmt.Errorf("redis reservation set: %w", err)
	}
	return result == "OK", nil
}

// Release drops the hold on a gift.
func (s *ReservationStore) Release(ctx context.Context, giftID string) error {
	if err := s.client.Del(ctx, s.prefix+giftID).Err(); err != nil {
		return fmt.Errorf("redis reservation release: %w", err)
	}
	return nil
}
