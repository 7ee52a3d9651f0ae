package video

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type deleteVideoSrv struct {
	repo  port.VideoRepository
	strg  port.ObjectStore
	cache port.StatsCache
}

// compile-time check: *deleteVideoSrv must satisfy port.VideoDeleter
var _ port.VideoDeleter = (*deleteVideoSrv)(nil)

func NewVideoDeleter(repo port.VideoRepository, strg port.ObjectStore, cache port.StatsCache) port.VideoDeleter {
	return &deleteVideoSrv{repo: repo, strg: strg, cache: cache}
}

// DeleteVideo removes the remote video first and the record only once that succeeded.
// The thumbnail goes last, on a best-effort basis.
func (s *deleteVideoSrv) DeleteVideo(ctx context.Context, id, principal uuid.UUID) error {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := usecase.RequireOwner(v, principal, "video"); err != nil {
		return err
	}

	publicID, err := s.strg.PublicIDFromRef(v.VideoFile, port.MediaKindVideo)
	if err != nil {
		return err
	}
	if err := s.strg.Delete(ctx, publicID, port.MediaKindVideo); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, v.ID); err != nil {
		return err
	}
	logger.Infof(ctx, "video #%s deleted", v.ID)

	deleteRemote(ctx, s.strg, v.Thumbnail, port.MediaKindImage)
	invalidateStats(ctx, s.cache, v.Owner)
	return nil
}
