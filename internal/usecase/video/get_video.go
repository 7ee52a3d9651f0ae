package video

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type getVideoSrv struct {
	repo port.VideoRepository
}

// compile-time check: *getVideoSrv must satisfy port.VideoGetter
var _ port.VideoGetter = (*getVideoSrv)(nil)

func NewVideoGetter(repo port.VideoRepository) port.VideoGetter {
	return &getVideoSrv{repo: repo}
}

// GetVideo counts the view, then reads the record so the returned count includes it.
func (s *getVideoSrv) GetVideo(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	if err := s.repo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}
