package video

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/validation"
)

type updateVideoSrv struct {
	repo  port.VideoRepository
	strg  port.ObjectStore
	cache port.StatsCache
	tasks port.TaskDispatcher
}

// compile-time check: *updateVideoSrv must satisfy port.VideoUpdater
var _ port.VideoUpdater = (*updateVideoSrv)(nil)

func NewVideoUpdater(repo port.VideoRepository, strg port.ObjectStore, cache port.StatsCache, tasks port.TaskDispatcher) port.VideoUpdater {
	return &updateVideoSrv{repo: repo, strg: strg, cache: cache, tasks: tasks}
}

type updateFields struct {
	Title       string `json:"title" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
}

// UpdateVideo overwrites title and description. When a thumbnail is given it replaces the
// current one, which is removed only once the record points at the new one.
func (s *updateVideoSrv) UpdateVideo(ctx context.Context, in port.UpdateVideoInput) (*model.Video, error) {
	defer removeStaged(ctx, in.Thumbnail)

	if err := validation.ValidateStruct(updateFields{Title: in.Title, Description: in.Description}); err != nil {
		return nil, fmt.Errorf("%w: %w", usecase.ErrValidation, err)
	}
	if in.Thumbnail != nil && !in.Thumbnail.Exists() {
		return nil, fmt.Errorf("%w: thumbnail", ErrStagedMissing)
	}

	v, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if err := usecase.RequireOwner(v, in.Principal, "video"); err != nil {
		return nil, err
	}

	oldThumb := v.Thumbnail
	var newThumb *uploaded
	if in.Thumbnail != nil {
		res, err := s.strg.Upload(ctx, in.Thumbnail, port.MediaKindImage)
		if err != nil {
			return nil, err
		}
		newThumb = &uploaded{kind: port.MediaKindImage, res: res}
		v.Thumbnail = res.ExternalRef
		v.ThumbnailOptimised = false
	}

	v.Title = strings.TrimSpace(in.Title)
	v.Description = strings.TrimSpace(in.Description)
	v.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, v); err != nil {
		if newThumb != nil {
			compensate(ctx, s.strg, *newThumb)
		}
		return nil, err
	}
	logger.Infof(ctx, "video #%s updated", v.ID)

	if newThumb != nil {
		deleteRemote(ctx, s.strg, oldThumb, port.MediaKindImage)
		if err := s.tasks.EnqueueOptimiseThumbnail(ctx, v.ID); err != nil {
			logger.Warnf(ctx, "failed to enqueue thumbnail optimisation for video #%s: %v", v.ID, err)
		}
	}
	invalidateStats(ctx, s.cache, v.Owner)

	return v, nil
}
