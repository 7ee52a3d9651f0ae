package mock

import (
	"context"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

// StatsCache implements port.StatsCache for tests.
type StatsCache struct {
	Out    *model.ChannelStats
	GetErr error
	SetErr error
	DelErr error

	SetCalled bool
	SetStats  *model.ChannelStats
	SetTTL    time.Duration
	DelCalled bool
	DeletedID uuid.UUID
}

func (m *StatsCache) GetChannelStats(ctx context.Context, channel uuid.UUID) (*model.ChannelStats, error) {
	return m.Out, m.GetErr
}

func (m *StatsCache) SetChannelStats(ctx context.Context, channel uuid.UUID, stats *model.ChannelStats, ttl time.Duration) error {
	m.SetCalled = true
	m.SetStats, m.SetTTL = stats, ttl
	return m.SetErr
}

func (m *StatsCache) DeleteChannelStats(ctx context.Context, channel uuid.UUID) error {
	m.DelCalled = true
	m.DeletedID = channel
	return m.DelErr
}
