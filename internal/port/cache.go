package port

import (
	"context"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

// StatsCache keeps computed dashboard stats per channel. A miss is (nil, nil).
type StatsCache interface {
	GetChannelStats(ctx context.Context, channel uuid.UUID) (*model.ChannelStats, error)
	SetChannelStats(ctx context.Context, channel uuid.UUID, stats *model.ChannelStats, ttl time.Duration) error
	DeleteChannelStats(ctx context.Context, channel uuid.UUID) error
}
