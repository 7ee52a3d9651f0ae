package task

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

// NoopDispatcher drops every task. Thumbnails then stay unoptimised until the backlog runs.
type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueOptimiseThumbnail(ctx context.Context, videoID uuid.UUID) error {
	return nil
}
