package mock

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type Dispatcher struct {
	Err      error
	Called   bool
	Enqueued []uuid.UUID
}

func (m *Dispatcher) EnqueueOptimiseThumbnail(ctx context.Context, videoID uuid.UUID) error {
	m.Called = true
	m.Enqueued = append(m.Enqueued, videoID)
	return m.Err
}
