package cache

import (
	"context"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

// NoopCache is used when no Redis is configured: every read misses.
type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.StatsCache
var _ port.StatsCache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetChannelStats(ctx context.Context, channel uuid.UUID) (*model.ChannelStats, error) {
	return nil, nil
}

func (n *NoopCache) SetChannelStats(ctx context.Context, channel uuid.UUID, stats *model.ChannelStats, ttl time.Duration) error {
	return nil
}

func (n *NoopCache) DeleteChannelStats(ctx context.Context, channel uuid.UUID) error { return nil }
