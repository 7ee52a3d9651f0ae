package comment

import (
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type commentSrv struct {
	comments port.CommentRepository
	videos   port.VideoRepository
	newID    port.UUIDGen
}

// compile-time check: *commentSrv must satisfy port.CommentService
var _ port.CommentService = (*commentSrv)(nil)

func NewCommentService(comments port.CommentRepository, videos port.VideoRepository, newID port.UUIDGen) port.CommentService {
	if newID == nil {
		newID = uuid.NewUUID
	}
	return &commentSrv{comments: comments, videos: videos, newID: newID}
}

type contentInput struct {
	Content string `json:"content" validate:"required,notblank"`
}
