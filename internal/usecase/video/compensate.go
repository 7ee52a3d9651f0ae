package video

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/metrics"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

// uploaded is an artifact stored during the current call.
type uploaded struct {
	kind port.MediaKind
	res  port.UploadResult
}

// compensate removes artifacts uploaded by a call that then failed. Failures are logged and
// counted, the caller keeps returning its original error.
func compensate(ctx context.Context, strg port.ObjectStore, artifacts ...uploaded) {
	for _, a := range artifacts {
		err := strg.Delete(ctx, a.res.PublicID, a.kind)
		metrics.CompensationsTotal.WithLabelValues(metrics.Status(err)).Inc()
		if err != nil {
			logger.Errorf(ctx, "failed to remove orphaned %s %q: %v", a.kind, a.res.ExternalRef, err)
			continue
		}
		logger.Warnf(ctx, "removed orphaned %s %q", a.kind, a.res.ExternalRef)
	}
}

// removeStaged drops whatever staged files an early return left on disk.
func removeStaged(ctx context.Context, files ...*port.StagedFile) {
	for _, f := range files {
		if err := f.Remove(); err != nil {
			logger.Warnf(ctx, "failed to remove staged file %q: %v", f.Path, err)
		}
	}
}

// deleteRemote removes a stored artifact by its external ref, only logging failures.
func deleteRemote(ctx context.Context, strg port.ObjectStore, ref string, kind port.MediaKind) {
	publicID, err := strg.PublicIDFromRef(ref, kind)
	if err == nil {
		err = strg.Delete(ctx, publicID, kind)
	}
	if err != nil {
		logger.Warnf(ctx, "failed to remove old %s %q: %v", kind, ref, err)
	}
}

func invalidateStats(ctx context.Context, cache port.StatsCache, owner uuid.UUID) {
	if err := cache.DeleteChannelStats(ctx, owner); err != nil {
		logger.Warnf(ctx, "failed to invalidate stats of channel #%s: %v", owner, err)
	}
}
