package video

import (
	"context"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type togglePublishSrv struct {
	repo port.VideoRepository
}

// compile-time check: *togglePublishSrv must satisfy port.PublishToggler
var _ port.PublishToggler = (*togglePublishSrv)(nil)

func NewPublishToggler(repo port.VideoRepository) port.PublishToggler {
	return &togglePublishSrv{repo: repo}
}

func (s *togglePublishSrv) TogglePublish(ctx context.Context, id, principal uuid.UUID) (*model.Video, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := usecase.RequireOwner(v, principal, "video"); err != nil {
		return nil, err
	}

	v.IsPublished = !v.IsPublished
	v.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	logger.Infof(ctx, "video #%s is now published=%t", v.ID, v.IsPublished)
	return v, nil
}
