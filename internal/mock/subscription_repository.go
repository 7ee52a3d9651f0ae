package mock

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type SubscriptionRepo struct {
	Added      bool
	ToggleErr  error
	IDsOut     []uuid.UUID
	ListOut    []*model.Subscription
	ListErr    error
	CountOut   int64
	CountErr   error
	ToggleCall *model.Subscription
}

func (m *SubscriptionRepo) Toggle(ctx context.Context, s *model.Subscription) (bool, error) {
	m.ToggleCall = s
	return m.Added, m.ToggleErr
}

func (m *SubscriptionRepo) SubscriberIDs(ctx context.Context, channel uuid.UUID) ([]uuid.UUID, error) {
	return m.IDsOut, m.ListErr
}

func (m *SubscriptionRepo) ListBySubscriber(ctx context.Context, subscriber uuid.UUID) ([]*model.Subscription, error) {
	return m.ListOut, m.ListErr
}

func (m *SubscriptionRepo) CountSubscribers(ctx context.Context, channel uuid.UUID) (int64, error) {
	return m.CountOut, m.CountErr
}
