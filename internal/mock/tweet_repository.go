package mock

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type TweetRepo struct {
	Record  *model.Tweet
	ListOut []*model.Tweet

	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error
	ListErr   error

	Created      *model.Tweet
	Updated      *model.Tweet
	DeleteCalled bool
}

func (m *TweetRepo) Create(ctx context.Context, t *model.Tweet) error {
	m.Created = t
	return m.CreateErr
}

func (m *TweetRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Record == nil {
		return nil, notFound("tweet")
	}
	cp := *m.Record
	return &cp, nil
}

func (m *TweetRepo) Update(ctx context.Context, t *model.Tweet) error {
	m.Updated = t
	return m.UpdateErr
}

func (m *TweetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalled = true
	return m.DeleteErr
}

func (m *TweetRepo) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*model.Tweet, error) {
	return m.ListOut, m.ListErr
}
