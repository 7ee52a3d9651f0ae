package comment

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

// ListVideoComments returns one page of the comments on video, newest first.
func (s *commentSrv) ListVideoComments(ctx context.Context, video uuid.UUID, page port.Page) ([]*model.Comment, error) {
	comments, err := s.comments.ListByVideo(ctx, video, port.NewPage(page.Page, page.Limit))
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*model.Comment{}
	}
	return comments, nil
}
