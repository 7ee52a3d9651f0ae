package port

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type TaskDispatcher interface {
	EnqueueOptimiseThumbnail(ctx context.Context, videoID uuid.UUID) error
}
