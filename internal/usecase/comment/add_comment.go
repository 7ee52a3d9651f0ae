package comment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
	"github.com/fhuszti/videotube-ms-go/internal/validation"
)

func (s *commentSrv) AddComment(ctx context.Context, video, principal uuid.UUID, content string) (*model.Comment, error) {
	if err := validation.ValidateStruct(contentInput{Content: content}); err != nil {
		return nil, fmt.Errorf("%w: %w", usecase.ErrValidation, err)
	}

	ok, err := s.videos.Exists(ctx, video)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: video does not exist", usecase.ErrNotFound)
	}

	now := time.Now().UTC()
	c := &model.Comment{
		ID:        s.newID(),
		Content:   strings.TrimSpace(content),
		Video:     video,
		Owner:     principal,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	logger.Infof(ctx, "comment #%s added to video #%s", c.ID, video)
	return c, nil
}
