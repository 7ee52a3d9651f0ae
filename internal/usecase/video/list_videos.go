package video

import (
	"context"
	"strings"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

const defaultSortField = "createdAt"

type listVideosSrv struct {
	repo port.VideoRepository
}

// compile-time check: *listVideosSrv must satisfy port.VideoLister
var _ port.VideoLister = (*listVideosSrv)(nil)

func NewVideoLister(repo port.VideoRepository) port.VideoLister {
	return &listVideosSrv{repo: repo}
}

// ListVideos normalises the raw query parameters. Out of range pages and limits are clamped,
// unknown sort fields fall back to createdAt and an unparsable userId is ignored.
func (s *listVideosSrv) ListVideos(ctx context.Context, in port.ListVideosInput) ([]*model.Video, error) {
	filter := port.VideoFilter{
		Query: strings.TrimSpace(in.Query),
		Sort:  port.Sort{Field: in.SortBy, Desc: !strings.EqualFold(in.SortType, "asc")},
	}
	if _, ok := model.VideoSortFields[filter.Sort.Field]; !ok {
		filter.Sort.Field = defaultSortField
	}
	if owner, err := uuid.Parse(in.UserID); err == nil {
		filter.OwnerID = &owner
	}

	videos, err := s.repo.List(ctx, filter, port.NewPage(in.Page, in.Limit))
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []*model.Video{}
	}
	return videos, nil
}
