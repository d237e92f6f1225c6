package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/vinchivii/book-savvy-studio/internal/domain/scheduling"
)

// SlotCache keeps generated slot lists in Redis for a short TTL. Keys
// embed a per-creator version counter; bumping the version on any
// booking or schedule mutation orphans every cached day at once, so no
// key scanning is ever needed.
type SlotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSlotCache(rdb *redis.Client, ttl time.Duration) *SlotCache {
	return &SlotCache{rdb: rdb, ttl: ttl}
}

func (c *SlotCache) Get(
	ctx context.Context,
	creatorID uint,
	serviceID uint,
	date string,
) ([]domain.TimeSlot, bool) {

	key, err := c.key(ctx, creatorID, serviceID, date)
	if err != nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *SlotCache) Set(
	ctx context.Context,
	creatorID uint,
	serviceID uint,
	date string,
	slots []domain.TimeSlot,
) {

	key, err := c.key(ctx, creatorID, serviceID, date)
	if err != nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, key, raw, c.ttl)
}

// Invalidate bumps the creator's version counter, dropping every cached
// slot list for that creator. Cache failures are silent: slots are
// always recomputable.
func (c *SlotCache) Invalidate(ctx context.Context, creatorID uint) {
	c.rdb.Incr(ctx, versionKey(creatorID))
}

func (c *SlotCache) key(
	ctx context.Context,
	creatorID uint,
	serviceID uint,
	date string,
) (string, error) {

	ver, err := c.rdb.Get(ctx, versionKey(creatorID)).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}

	return fmt.Sprintf("slots:%d:%d:%d:%s", creatorID, ver, serviceID, date), nil
}

func versionKey(creatorID uint) string {
	return fmt.Sprintf("slots_ver:%d", creatorID)
}
