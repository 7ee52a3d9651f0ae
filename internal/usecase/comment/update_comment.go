package comment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
	"github.com/fhuszti/videotube-ms-go/internal/validation"
)

func (s *commentSrv) UpdateComment(ctx context.Context, id, principal uuid.UUID, content string) (*model.Comment, error) {
	if err := validation.ValidateStruct(contentInput{Content: content}); err != nil {
		return nil, fmt.Errorf("%w: %w", usecase.ErrValidation, err)
	}

	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := usecase.RequireOwner(c, principal, "comment"); err != nil {
		return nil, err
	}

	c.Content = strings.TrimSpace(content)
	c.UpdatedAt = time.Now().UTC()
	if err := s.comments.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
