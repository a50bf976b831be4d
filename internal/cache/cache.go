package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/config"
)

// GridCache keeps rendered day grids in Redis for a short TTL so the
// dashboard's aggressive re-fetching does not rebuild the layout on
// every poll. The layout itself is pure, so caching by input key is
// safe; writes to a day simply drop that day's keys.
type GridCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(cfg *config.Config) *GridCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	ttl := time.Duration(cfg.GridCacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return &GridCache{rdb: rdb, ttl: ttl}
}

func dayKey(salonID uint, date string, staffID *uint) string {
	if staffID == nil {
		return fmt.Sprintf("daygrid:%d:%s:all", salonID, date)
	}
	return fmt.Sprintf("daygrid:%d:%s:%d", salonID, date, *staffID)
}

// GetDayGrid unmarshals a cached grid into dst. A miss, an unreachable
// Redis or a stale payload all just mean "rebuild": the cache is never
// allowed to fail a request.
func (c *GridCache) GetDayGrid(ctx context.Context, salonID uint, date string, staffID *uint, dst any) bool {
	if c == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, dayKey(salonID, date, staffID)).Bytes()
	if err != nil {
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false
	}
	return true
}

func (c *GridCache) SetDayGrid(ctx context.Context, salonID uint, date string, staffID *uint, grid any) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(grid)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, dayKey(salonID, date, staffID), raw, c.ttl).Err(); err != nil {
		log.Println("grid cache set failed:", err)
	}
}

// InvalidateDay drops every cached grid for the salon's day, the
// all-staff variant included.
func (c *GridCache) InvalidateDay(ctx context.Context, salonID uint, date string) {
	if c == nil {
		return
	}

	pattern := fmt.Sprintf("daygrid:%d:%s:*", salonID, date)

	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			log.Println("grid cache invalidate failed:", err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Println("grid cache scan failed:", err)
	}
}
