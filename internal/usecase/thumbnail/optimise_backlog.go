package thumbnail

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/port"
)

type backlogOptimiserSrv struct {
	repo  port.VideoRepository
	tasks port.TaskDispatcher
}

// compile-time check: *backlogOptimiserSrv must satisfy port.BacklogOptimiser
var _ port.BacklogOptimiser = (*backlogOptimiserSrv)(nil)

func NewBacklogOptimiser(repo port.VideoRepository, tasks port.TaskDispatcher) port.BacklogOptimiser {
	return &backlogOptimiserSrv{repo, tasks}
}

// OptimiseBacklog enqueues an optimisation task for every video whose thumbnail is not
// optimised yet and returns how many were enqueued.
func (s *backlogOptimiserSrv) OptimiseBacklog(ctx context.Context) (int, error) {
	ids, err := s.repo.ListUnoptimisedThumbnails(ctx)
	if err != nil {
		return 0, err
	}

	if len(ids) == 0 {
		logger.Info(ctx, "no thumbnails found to optimise")
		return 0, nil
	}

	enqueued := 0
	for _, id := range ids {
		if err := s.tasks.EnqueueOptimiseThumbnail(ctx, id); err != nil {
			logger.Warnf(ctx, "failed to enqueue optimise task for video #%s: %v", id, err)
			continue
		}
		enqueued++
	}
	return enqueued, nil
}
