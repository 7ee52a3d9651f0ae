package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

var ErrSelfSubscription = fmt.Errorf("%w: you cannot subscribe to your own channel", usecase.ErrValidation)

type subscriptionSrv struct {
	subs  port.SubscriptionRepository
	users port.UserRepository
	cache port.StatsCache
	newID port.UUIDGen
}

// compile-time check: *subscriptionSrv must satisfy port.SubscriptionService
var _ port.SubscriptionService = (*subscriptionSrv)(nil)

func NewSubscriptionService(subs port.SubscriptionRepository, users port.UserRepository, cache port.StatsCache, newID port.UUIDGen) port.SubscriptionService {
	if newID == nil {
		newID = uuid.NewUUID
	}
	return &subscriptionSrv{subs: subs, users: users, cache: cache, newID: newID}
}

func (s *subscriptionSrv) ToggleSubscription(ctx context.Context, channel, principal uuid.UUID) (port.ToggleResult, error) {
	if channel == principal {
		return port.ToggleResult{}, ErrSelfSubscription
	}
	if _, err := s.users.GetByID(ctx, channel); err != nil {
		return port.ToggleResult{}, err
	}

	sub := &model.Subscription{
		ID:         s.newID(),
		Channel:    channel,
		Subscriber: principal,
		CreatedAt:  time.Now().UTC(),
	}
	added, err := s.subs.Toggle(ctx, sub)
	if err != nil {
		return port.ToggleResult{}, err
	}
	if err := s.cache.DeleteChannelStats(ctx, channel); err != nil {
		logger.Warnf(ctx, "failed to invalidate stats of channel #%s: %v", channel, err)
	}

	if !added {
		logger.Infof(ctx, "unsubscribed from channel #%s", channel)
		return port.ToggleResult{Added: false}, nil
	}
	logger.Infof(ctx, "subscribed to channel #%s", channel)
	return port.ToggleResult{Added: true, Record: sub}, nil
}

func (s *subscriptionSrv) ChannelSubscribers(ctx context.Context, channel uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.subs.SubscriberIDs(ctx, channel)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

func (s *subscriptionSrv) SubscribedChannels(ctx context.Context, subscriber uuid.UUID) ([]*model.Subscription, error) {
	subs, err := s.subs.ListBySubscriber(ctx, subscriber)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []*model.Subscription{}
	}
	return subs, nil
}
