package api_context

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type ctxKey string

const (
	IDKey          ctxKey = "id"
	SubIDKey       ctxKey = "subId"
	AuthUserIDKey  ctxKey = "authUserID"
	StagedFilesKey ctxKey = "stagedFiles"
)

func IDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(IDKey).(uuid.UUID)
	return id, ok
}

func SubIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(SubIDKey).(uuid.UUID)
	return id, ok
}

func AuthUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(uuid.UUID)
	return id, ok
}

// StagedFilesFromContext returns the files staged for the current request, keyed by form field.
func StagedFilesFromContext(ctx context.Context) map[string]*port.StagedFile {
	files, _ := ctx.Value(StagedFilesKey).(map[string]*port.StagedFile)
	return files
}

// StagedFile returns the staged file for the given form field, or nil.
func StagedFile(ctx context.Context, field string) *port.StagedFile {
	return StagedFilesFromContext(ctx)[field]
}
