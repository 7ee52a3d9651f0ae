package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeOptimiseThumbnail = "thumbnail:optimise"

type OptimiseThumbnailPayload struct {
	VideoID string `json:"id" validate:"required,uuid"`
}

// NewOptimiseThumbnailTask creates an Asynq task optimising the thumbnail of a video.
func NewOptimiseThumbnailTask(videoID string) (*asynq.Task, error) {
	data, err := json.Marshal(OptimiseThumbnailPayload{VideoID: videoID})
	if err != nil {
		return nil, fmt.Errorf("could not marshal optimise-thumbnail payload: %w", err)
	}
	return asynq.NewTask(TypeOptimiseThumbnail, data, asynq.MaxRetry(5)), nil
}

// ParseOptimiseThumbnailPayload parses the task payload to OptimiseThumbnailPayload.
func ParseOptimiseThumbnailPayload(t *asynq.Task) (OptimiseThumbnailPayload, error) {
	var p OptimiseThumbnailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return OptimiseThumbnailPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
