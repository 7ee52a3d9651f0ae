package task

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
	"github.com/hibiken/asynq"
)

type Dispatcher struct {
	client *asynq.Client
}

// compile-time check: *Dispatcher must satisfy port.TaskDispatcher
var _ port.TaskDispatcher = (*Dispatcher)(nil)

func NewDispatcher(addr, password string) *Dispatcher {
	c := asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password})
	return &Dispatcher{client: c}
}

func (d *Dispatcher) EnqueueOptimiseThumbnail(ctx context.Context, videoID uuid.UUID) error {
	t, err := NewOptimiseThumbnailTask(videoID.String())
	if err != nil {
		return err
	}
	info, err := d.client.EnqueueContext(ctx, t)
	if err != nil {
		return err
	}
	logger.Infof(ctx, "enqueued thumbnail optimisation of video #%s as task %s", videoID, info.ID)
	return nil
}

func (d *Dispatcher) Close() error {
	return d.client.Close()
}
