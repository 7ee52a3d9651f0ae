package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.StatsCache
var _ port.StatsCache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetChannelStats(ctx context.Context, channel uuid.UUID) (*model.ChannelStats, error) {
	logger.Debugf(ctx, "getting cached stats for channel #%s...", channel)

	val, err := c.client.Get(ctx, getCacheKey(channel.String())).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var stats model.ChannelStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		return nil, fmt.Errorf("unmarshal failed: %w", err)
	}
	return &stats, nil
}

func (c *Cache) SetChannelStats(ctx context.Context, channel uuid.UUID, stats *model.ChannelStats, ttl time.Duration) error {
	logger.Debugf(ctx, "caching stats for channel #%s for %s...", channel, ttl)

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	if err := c.client.Set(ctx, getCacheKey(channel.String()), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *Cache) DeleteChannelStats(ctx context.Context, channel uuid.UUID) error {
	logger.Debugf(ctx, "dropping cached stats for channel #%s...", channel)

	if err := c.client.Del(ctx, getCacheKey(channel.String())).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(id string) string {
	return "stats:" + id
}
