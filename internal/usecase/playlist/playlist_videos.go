package playlist

import (
	"context"
	"fmt"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

// AddVideo puts video in the playlist. Adding a video twice keeps a single entry.
func (s *playlistSrv) AddVideo(ctx context.Context, playlist, video, principal uuid.UUID) (*model.Playlist, error) {
	if _, err := s.owned(ctx, playlist, principal); err != nil {
		return nil, err
	}

	ok, err := s.videos.Exists(ctx, video)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: video does not exist", usecase.ErrNotFound)
	}

	if err := s.playlists.AddVideo(ctx, playlist, video); err != nil {
		return nil, err
	}
	return s.playlists.GetByID(ctx, playlist)
}

func (s *playlistSrv) RemoveVideo(ctx context.Context, playlist, video, principal uuid.UUID) (*model.Playlist, error) {
	if _, err := s.owned(ctx, playlist, principal); err != nil {
		return nil, err
	}
	if err := s.playlists.RemoveVideo(ctx, playlist, video); err != nil {
		return nil, err
	}
	return s.playlists.GetByID(ctx, playlist)
}
