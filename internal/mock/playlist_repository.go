package mock

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type PlaylistRepo struct {
	Record  *model.Playlist
	ListOut []*model.Playlist

	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error
	AddErr    error
	RemoveErr error
	ListErr   error

	Created      *model.Playlist
	Updated      *model.Playlist
	DeleteCalled bool
	AddedVideo   uuid.UUID
	RemovedVideo uuid.UUID
	AddCalled    bool
	RemoveCalled bool
}

func (m *PlaylistRepo) Create(ctx context.Context, p *model.Playlist) error {
	m.Created = p
	return m.CreateErr
}

// GetByID returns a copy of Record reflecting the videos added or removed so far.
func (m *PlaylistRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Record == nil {
		return nil, notFound("playlist")
	}
	cp := *m.Record
	cp.Videos = append([]uuid.UUID(nil), m.Record.Videos...)
	return &cp, nil
}

func (m *PlaylistRepo) Update(ctx context.Context, p *model.Playlist) error {
	m.Updated = p
	return m.UpdateErr
}

func (m *PlaylistRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalled = true
	return m.DeleteErr
}

func (m *PlaylistRepo) AddVideo(ctx context.Context, playlist, video uuid.UUID) error {
	m.AddCalled = true
	m.AddedVideo = video
	if m.AddErr != nil {
		return m.AddErr
	}
	if m.Record != nil {
		for _, v := range m.Record.Videos {
			if v == video {
				return nil
			}
		}
		m.Record.Videos = append(m.Record.Videos, video)
	}
	return nil
}

func (m *PlaylistRepo) RemoveVideo(ctx context.Context, playlist, video uuid.UUID) error {
	m.RemoveCalled = true
	m.RemovedVideo = video
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	if m.Record != nil {
		kept := m.Record.Videos[:0]
		for _, v := range m.Record.Videos {
			if v != video {
				kept = append(kept, v)
			}
		}
		m.Record.Videos = kept
	}
	return nil
}

func (m *PlaylistRepo) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*model.Playlist, error) {
	return m.ListOut, m.ListErr
}
