// Package qcache caches tour list/detail responses in Redis between console
// invocations. CLI processes are short-lived, so an in-process cache would
// never get a hit; Redis plays the role the dashboard's query cache plays in
// the browser. Misses and Redis outages are non-fatal: the console just goes
// back to the API.
package qcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"tourdesk/models"
)

const DefaultTTL = 5 * time.Minute

type Cache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// New connects to Redis at addr. ttl<=0 uses DefaultTTL.
func New(addr string, ttl time.Duration, logger *zap.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		rdb:    redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
		logger: logger,
	}
}

func (c *Cache) Close() error { return c.rdb.Close() }

func detailKey(id string) string   { return "tours:detail:" + id }
func listKey(userID string) string { return "tours:list:" + userID }

// GetTour returns the cached detail record, ok=false on miss.
func (c *Cache) GetTour(ctx context.Context, id string) (*models.Tour, bool) {
	raw, err := c.rdb.Get(ctx, detailKey(id)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("cache get failed", zap.Error(err))
		}
		return nil, false
	}
	var tour models.Tour
	if err := json.Unmarshal([]byte(raw), &tour); err != nil {
		c.logger.Debug("cache entry corrupt, dropping", zap.String("key", detailKey(id)))
		c.rdb.Del(ctx, detailKey(id))
		return nil, false
	}
	return &tour, true
}

// SetTour stores the detail record.
func (c *Cache) SetTour(ctx context.Context, tour *models.Tour) {
	b, err := json.Marshal(tour)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, detailKey(tour.TourID), b, c.ttl).Err(); err != nil {
		c.logger.Debug("cache set failed", zap.Error(err))
	}
}

// GetList returns the cached tour list for an operator.
func (c *Cache) GetList(ctx context.Context, userID string) ([]models.Tour, bool) {
	raw, err := c.rdb.Get(ctx, listKey(userID)).Result()
	if err != nil {
		return nil, false
	}
	var tours []models.Tour
	if err := json.Unmarshal([]byte(raw), &tours); err != nil {
		c.rdb.Del(ctx, listKey(userID))
		return nil, false
	}
	return tours, true
}

// SetList stores the tour list for an operator.
func (c *Cache) SetList(ctx context.Context, userID string, tours []models.Tour) {
	b, err := json.Marshal(tours)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, listKey(userID), b, c.ttl).Err(); err != nil {
		c.logger.Debug("cache set failed", zap.Error(err))
	}
}

// Invalidate drops the detail and list entries touched by a mutation so the
// next view refetches.
func (c *Cache) Invalidate(ctx context.Context, userID, tourID string) error {
	keys := []string{listKey(userID)}
	if tourID != "" {
		keys = append(keys, detailKey(tourID))
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("qcache: invalidate: %w", err)
	}
	return nil
}
