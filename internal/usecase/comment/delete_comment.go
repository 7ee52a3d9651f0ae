package comment

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

func (s *commentSrv) DeleteComment(ctx context.Context, id, principal uuid.UUID) error {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := usecase.RequireOwner(c, principal, "comment"); err != nil {
		return err
	}
	if err := s.comments.Delete(ctx, c.ID); err != nil {
		return err
	}
	logger.Infof(ctx, "comment #%s deleted", c.ID)
	return nil
}
