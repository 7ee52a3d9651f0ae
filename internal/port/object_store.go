package port

import (
	"context"
	"io"
)

// MediaKind selects how the object store treats an artifact.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// UploadResult is what the object store reports back after storing an artifact.
type UploadResult struct {
	ExternalRef     string
	PublicID        string
	ContentType     string
	SizeBytes       int64
	DurationSeconds float64 // video only, 0 when it could not be determined
}

// ObjectStore stores binary media outside the database.
type ObjectStore interface {
	// Upload stores the staged file and always removes it before returning.
	Upload(ctx context.Context, file *StagedFile, kind MediaKind) (UploadResult, error)
	// Put stores an in-memory artifact, e.g. a re-encoded thumbnail.
	Put(ctx context.Context, kind MediaKind, r io.Reader, size int64, contentType string) (UploadResult, error)
	// Delete removes every object stored under the given public ID.
	Delete(ctx context.Context, publicID string, kind MediaKind) error
	Open(ctx context.Context, externalRef string) (io.ReadCloser, error)
	PublicIDFromRef(externalRef string, kind MediaKind) (string, error)
}
