package dashboard

import (
	"context"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
	"golang.org/x/sync/errgroup"
)

type dashboardSrv struct {
	videos port.VideoRepository
	likes  port.LikeRepository
	subs   port.SubscriptionRepository
	users  port.UserRepository
	cache  port.StatsCache
	ttl    time.Duration
}

// compile-time check: *dashboardSrv must satisfy port.DashboardService
var _ port.DashboardService = (*dashboardSrv)(nil)

func NewDashboardService(videos port.VideoRepository, likes port.LikeRepository, subs port.SubscriptionRepository, users port.UserRepository, cache port.StatsCache, ttl time.Duration) port.DashboardService {
	return &dashboardSrv{videos: videos, likes: likes, subs: subs, users: users, cache: cache, ttl: ttl}
}

// ChannelStats serves the cached stats of channel, computing and caching them on a miss.
// Cache failures only cost a recomputation.
func (s *dashboardSrv) ChannelStats(ctx context.Context, channel uuid.UUID) (*model.ChannelStats, error) {
	cached, err := s.cache.GetChannelStats(ctx, channel)
	if err != nil {
		logger.Warnf(ctx, "failed to read cached stats of channel #%s: %v", channel, err)
	}
	if cached != nil {
		return cached, nil
	}

	stats, err := s.compute(ctx, channel)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetChannelStats(ctx, channel, stats, s.ttl); err != nil {
		logger.Warnf(ctx, "failed to cache stats of channel #%s: %v", channel, err)
	}
	return stats, nil
}

func (s *dashboardSrv) compute(ctx context.Context, channel uuid.UUID) (*model.ChannelStats, error) {
	stats := &model.ChannelStats{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		u, err := s.users.GetByID(gctx, channel)
		if err != nil {
			return err
		}
		stats.ChannelName, stats.Logo = u.FullName, u.Avatar
		return nil
	})
	g.Go(func() error {
		var err error
		stats.TotalVideos, stats.TotalViews, err = s.videos.ChannelTotals(gctx, channel)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalLikes, err = s.likes.CountForOwnerVideos(gctx, channel)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalSubs, err = s.subs.CountSubscribers(gctx, channel)
		return err
	})
	g.Go(func() error {
		var err error
		stats.MostViewedVideo, err = s.videos.MostViewed(gctx, channel)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *dashboardSrv) ChannelVideos(ctx context.Context, channel uuid.UUID) ([]*model.Video, error) {
	videos, err := s.videos.ListByOwner(ctx, channel)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []*model.Video{}
	}
	return videos, nil
}
