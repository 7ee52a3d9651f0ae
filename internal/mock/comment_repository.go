package mock

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type CommentRepo struct {
	Record  *model.Comment
	ListOut []*model.Comment

	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error
	ListErr   error

	Created      *model.Comment
	Updated      *model.Comment
	DeleteCalled bool
	ListPage     port.Page
}

func (m *CommentRepo) Create(ctx context.Context, c *model.Comment) error {
	m.Created = c
	return m.CreateErr
}

func (m *CommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Record == nil {
		return nil, notFound("comment")
	}
	cp := *m.Record
	return &cp, nil
}

func (m *CommentRepo) Update(ctx context.Context, c *model.Comment) error {
	m.Updated = c
	return m.UpdateErr
}

func (m *CommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalled = true
	return m.DeleteErr
}

func (m *CommentRepo) ListByVideo(ctx context.Context, video uuid.UUID, page port.Page) ([]*model.Comment, error) {
	m.ListPage = page
	return m.ListOut, m.ListErr
}
