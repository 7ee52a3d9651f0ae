package mock

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type LikeRepo struct {
	Added     bool
	ToggleErr error
	VideosOut []*model.Video
	ListErr   error
	CountOut  int64
	CountErr  error

	Toggled      *model.Like
	ToggledKind  model.LikeTarget
	ToggleCalled bool
}

func (m *LikeRepo) Toggle(ctx context.Context, l *model.Like, target model.LikeTarget) (bool, error) {
	m.ToggleCalled = true
	m.Toggled, m.ToggledKind = l, target
	return m.Added, m.ToggleErr
}

func (m *LikeRepo) LikedVideos(ctx context.Context, user uuid.UUID) ([]*model.Video, error) {
	return m.VideosOut, m.ListErr
}

func (m *LikeRepo) CountForOwnerVideos(ctx context.Context, owner uuid.UUID) (int64, error) {
	return m.CountOut, m.CountErr
}
