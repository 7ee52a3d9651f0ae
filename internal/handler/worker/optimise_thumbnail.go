package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/task"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
	"github.com/fhuszti/videotube-ms-go/internal/validation"
	"github.com/hibiken/asynq"
)

// OptimiseThumbnailHandler handles an optimise-thumbnail task.
// It validates the incoming payload and delegates the call to the service.
func OptimiseThumbnailHandler(ctx context.Context, p task.OptimiseThumbnailPayload, svc port.ThumbnailOptimiser) error {
	if err := validation.ValidateStruct(p); err != nil {
		logger.Errorf(ctx, "❌  Payload validation failed: %v", err)
		return fmt.Errorf("%w: %w", asynq.SkipRetry, err)
	}

	id, err := uuid.Parse(p.VideoID)
	if err != nil {
		logger.Errorf(ctx, "❌  Invalid video ID %q: %v", p.VideoID, err)
		return fmt.Errorf("%w: %w", asynq.SkipRetry, err)
	}

	if err := svc.OptimiseThumbnail(ctx, id); err != nil {
		logger.Errorf(ctx, "❌  Failed to optimise thumbnail of video #%s: %v", id, err)
		// a deleted video will not come back, retrying is pointless
		if errors.Is(err, usecase.ErrNotFound) {
			return fmt.Errorf("%w: %w", asynq.SkipRetry, err)
		}
		return err
	}

	logger.Infof(ctx, "✅  Successfully optimised thumbnail of video #%s", id)
	return nil
}

// NewOptimiseThumbnailTaskHandler adapts OptimiseThumbnailHandler to the asynq mux.
func NewOptimiseThumbnailTaskHandler(svc port.ThumbnailOptimiser) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseOptimiseThumbnailPayload(t)
		if err != nil {
			return fmt.Errorf("%w: %w", asynq.SkipRetry, err)
		}
		return OptimiseThumbnailHandler(ctx, p, svc)
	}
}
