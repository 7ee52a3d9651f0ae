package playlist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
	"github.com/fhuszti/videotube-ms-go/internal/validation"
)

type createFields struct {
	Name string `json:"name" validate:"required,notblank"`
}

func (s *playlistSrv) CreatePlaylist(ctx context.Context, in port.PlaylistInput) (*model.Playlist, error) {
	if err := validation.ValidateStruct(createFields{Name: in.Name}); err != nil {
		return nil, fmt.Errorf("%w: %w", usecase.ErrValidation, err)
	}

	now := time.Now().UTC()
	p := &model.Playlist{
		ID:          s.newID(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Videos:      []uuid.UUID{},
		Owner:       in.Principal,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.playlists.Create(ctx, p); err != nil {
		return nil, err
	}
	logger.Infof(ctx, "playlist #%s created", p.ID)
	return p, nil
}

func (s *playlistSrv) GetPlaylist(ctx context.Context, id uuid.UUID) (*model.Playlist, error) {
	return s.playlists.GetByID(ctx, id)
}

func (s *playlistSrv) UserPlaylists(ctx context.Context, owner uuid.UUID) ([]*model.Playlist, error) {
	playlists, err := s.playlists.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if playlists == nil {
		playlists = []*model.Playlist{}
	}
	return playlists, nil
}
