package video

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/metrics"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
	"github.com/fhuszti/videotube-ms-go/internal/validation"
)

// Terminal states of the publish workflow.
const (
	StatePublished = "published"
	StateRejected  = "rejected"
	StateFailed    = "failed"
)

type publishVideoSrv struct {
	repo  port.VideoRepository
	strg  port.ObjectStore
	cache port.StatsCache
	tasks port.TaskDispatcher
	newID port.UUIDGen
}

// compile-time check: *publishVideoSrv must satisfy port.VideoPublisher
var _ port.VideoPublisher = (*publishVideoSrv)(nil)

func NewVideoPublisher(repo port.VideoRepository, strg port.ObjectStore, cache port.StatsCache, tasks port.TaskDispatcher, newID port.UUIDGen) port.VideoPublisher {
	if newID == nil {
		newID = uuid.NewUUID
	}
	return &publishVideoSrv{repo: repo, strg: strg, cache: cache, tasks: tasks, newID: newID}
}

type publishFields struct {
	Title       string           `json:"title" validate:"required,notblank"`
	Description string           `json:"description" validate:"required,notblank"`
	VideoFile   *port.StagedFile `json:"videoFile" validate:"required"`
	Thumbnail   *port.StagedFile `json:"thumbnail" validate:"required"`
}

// PublishVideo uploads the thumbnail then the video, and records both. Any artifact uploaded
// before a failure is removed again, so a record only ever exists with both refs resolved.
func (s *publishVideoSrv) PublishVideo(ctx context.Context, in port.PublishVideoInput) (_ *model.Video, err error) {
	state := StateFailed
	defer func() {
		if err == nil {
			state = StatePublished
		}
		metrics.PublishOutcomesTotal.WithLabelValues(state).Inc()
		removeStaged(ctx, in.VideoFile, in.Thumbnail)
	}()

	if err := validation.ValidateStruct(publishFields{
		Title:       in.Title,
		Description: in.Description,
		VideoFile:   in.VideoFile,
		Thumbnail:   in.Thumbnail,
	}); err != nil {
		state = StateRejected
		return nil, fmt.Errorf("%w: %w", usecase.ErrValidation, err)
	}
	if !in.Thumbnail.Exists() {
		state = StateRejected
		return nil, fmt.Errorf("%w: thumbnail", ErrStagedMissing)
	}
	if !in.VideoFile.Exists() {
		state = StateRejected
		return nil, fmt.Errorf("%w: videoFile", ErrStagedMissing)
	}

	thumb, err := s.strg.Upload(ctx, in.Thumbnail, port.MediaKindImage)
	if err != nil {
		return nil, err
	}
	thumbArtifact := uploaded{kind: port.MediaKindImage, res: thumb}

	vid, err := s.strg.Upload(ctx, in.VideoFile, port.MediaKindVideo)
	if err != nil {
		compensate(ctx, s.strg, thumbArtifact)
		return nil, err
	}
	vidArtifact := uploaded{kind: port.MediaKindVideo, res: vid}

	if vid.DurationSeconds <= 0 {
		compensate(ctx, s.strg, thumbArtifact, vidArtifact)
		return nil, ErrDurationUnknown
	}

	now := time.Now().UTC()
	v := &model.Video{
		ID:          s.newID(),
		VideoFile:   vid.ExternalRef,
		Thumbnail:   thumb.ExternalRef,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Owner:       in.Owner,
		Duration:    vid.DurationSeconds,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		compensate(ctx, s.strg, thumbArtifact, vidArtifact)
		return nil, err
	}
	logger.Infof(ctx, "video #%s published", v.ID)

	invalidateStats(ctx, s.cache, v.Owner)
	if err := s.tasks.EnqueueOptimiseThumbnail(ctx, v.ID); err != nil {
		logger.Warnf(ctx, "failed to enqueue thumbnail optimisation for video #%s: %v", v.ID, err)
	}

	return v, nil
}
