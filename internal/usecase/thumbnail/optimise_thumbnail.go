package thumbnail

import (
	"bytes"
	"context"
	"fmt"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type thumbnailOptimiserSrv struct {
	repo     port.VideoRepository
	strg     port.ObjectStore
	opt      port.ImageOptimiser
	maxWidth int
}

// compile-time check: *thumbnailOptimiserSrv must satisfy port.ThumbnailOptimiser
var _ port.ThumbnailOptimiser = (*thumbnailOptimiserSrv)(nil)

func NewThumbnailOptimiser(repo port.VideoRepository, strg port.ObjectStore, opt port.ImageOptimiser, maxWidth int) port.ThumbnailOptimiser {
	return &thumbnailOptimiserSrv{repo: repo, strg: strg, opt: opt, maxWidth: maxWidth}
}

// OptimiseThumbnail stores a resized WebP copy of the thumbnail, points the video at it and
// then drops the original. Already optimised thumbnails are left alone.
func (s *thumbnailOptimiserSrv) OptimiseThumbnail(ctx context.Context, videoID uuid.UUID) error {
	v, err := s.repo.GetByID(ctx, videoID)
	if err != nil {
		return err
	}
	if v.ThumbnailOptimised {
		logger.Infof(ctx, "thumbnail of video #%s already optimised", v.ID)
		return nil
	}

	rc, err := s.strg.Open(ctx, v.Thumbnail)
	if err != nil {
		return err
	}
	defer func() {
		if err := rc.Close(); err != nil {
			logger.Warnf(ctx, "failed to close thumbnail of video #%s: %v", v.ID, err)
		}
	}()

	out, err := s.opt.OptimiseThumbnail(rc, s.maxWidth)
	if err != nil {
		return fmt.Errorf("%w: %w", usecase.ErrUpstream, err)
	}

	res, err := s.strg.Put(ctx, port.MediaKindImage, bytes.NewReader(out), int64(len(out)), "image/webp")
	if err != nil {
		return err
	}

	oldRef := v.Thumbnail
	swapped, err := s.repo.SwapThumbnail(ctx, v.ID, oldRef, res.ExternalRef)
	if err != nil || !swapped {
		if dErr := s.strg.Delete(ctx, res.PublicID, port.MediaKindImage); dErr != nil {
			logger.Errorf(ctx, "failed to remove orphaned image %q: %v", res.ExternalRef, dErr)
		}
		if err == nil {
			logger.Infof(ctx, "thumbnail of video #%s changed while optimising, dropping the copy", v.ID)
		}
		return err
	}
	logger.Infof(ctx, "thumbnail of video #%s optimised (%d bytes)", v.ID, len(out))

	publicID, err := s.strg.PublicIDFromRef(oldRef, port.MediaKindImage)
	if err == nil {
		err = s.strg.Delete(ctx, publicID, port.MediaKindImage)
	}
	if err != nil {
		logger.Warnf(ctx, "failed to remove original thumbnail %q: %v", oldRef, err)
	}
	return nil
}
