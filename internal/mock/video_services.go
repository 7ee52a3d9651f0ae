package mock

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

// VideoService stands in for every video use case at once.
type VideoService struct {
	Out  *model.Video
	List []*model.Video
	Err  error

	Called       bool
	PublishIn    port.PublishVideoInput
	UpdateIn     port.UpdateVideoInput
	ListIn       port.ListVideosInput
	GotID        uuid.UUID
	GotPrincipal uuid.UUID
}

var (
	_ port.VideoPublisher = (*VideoService)(nil)
	_ port.VideoUpdater   = (*VideoService)(nil)
	_ port.VideoDeleter   = (*VideoService)(nil)
	_ port.VideoGetter    = (*VideoService)(nil)
	_ port.VideoLister    = (*VideoService)(nil)
	_ port.PublishToggler = (*VideoService)(nil)
)

func (m *VideoService) PublishVideo(_ context.Context, in port.PublishVideoInput) (*model.Video, error) {
	m.Called = true
	m.PublishIn = in
	return m.Out, m.Err
}

func (m *VideoService) UpdateVideo(_ context.Context, in port.UpdateVideoInput) (*model.Video, error) {
	m.Called = true
	m.UpdateIn = in
	return m.Out, m.Err
}

func (m *VideoService) DeleteVideo(_ context.Context, id, principal uuid.UUID) error {
	m.Called = true
	m.GotID, m.GotPrincipal = id, principal
	return m.Err
}

func (m *VideoService) GetVideo(_ context.Context, id uuid.UUID) (*model.Video, error) {
	m.Called = true
	m.GotID = id
	return m.Out, m.Err
}

func (m *VideoService) ListVideos(_ context.Context, in port.ListVideosInput) ([]*model.Video, error) {
	m.Called = true
	m.ListIn = in
	return m.List, m.Err
}

func (m *VideoService) TogglePublish(_ context.Context, id, principal uuid.UUID) (*model.Video, error) {
	m.Called = true
	m.GotID, m.GotPrincipal = id, principal
	return m.Out, m.Err
}
