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
)

var ErrNothingToUpdate = fmt.Errorf("%w: name or description is required", usecase.ErrValidation)

// UpdatePlaylist overwrites whichever of name and description is non-blank.
func (s *playlistSrv) UpdatePlaylist(ctx context.Context, id uuid.UUID, in port.PlaylistInput) (*model.Playlist, error) {
	name, desc := strings.TrimSpace(in.Name), strings.TrimSpace(in.Description)
	if name == "" && desc == "" {
		return nil, ErrNothingToUpdate
	}

	p, err := s.owned(ctx, id, in.Principal)
	if err != nil {
		return nil, err
	}
	if name != "" {
		p.Name = name
	}
	if desc != "" {
		p.Description = desc
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.playlists.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *playlistSrv) DeletePlaylist(ctx context.Context, id, principal uuid.UUID) error {
	p, err := s.owned(ctx, id, principal)
	if err != nil {
		return err
	}
	if err := s.playlists.Delete(ctx, p.ID); err != nil {
		return err
	}
	logger.Infof(ctx, "playlist #%s deleted", p.ID)
	return nil
}

// owned loads the playlist and checks principal may change it.
func (s *playlistSrv) owned(ctx context.Context, id, principal uuid.UUID) (*model.Playlist, error) {
	p, err := s.playlists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := usecase.RequireOwner(p, principal, "playlist"); err != nil {
		return nil, err
	}
	return p, nil
}
