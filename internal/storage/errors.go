package storage

import (
	"errors"
	"fmt"

	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/minio/minio-go/v7"
)

var (
	ErrStagedFileMissing   = fmt.Errorf("%w: staged file is missing", usecase.ErrValidation)
	ErrUnsupportedContent  = fmt.Errorf("%w: unsupported content type", usecase.ErrValidation)
	ErrForeignRef          = fmt.Errorf("%w: reference does not belong to this object store", usecase.ErrValidation)
	ErrRemoteObjectMissing = fmt.Errorf("%w: remote object not found", usecase.ErrUpstream)
)

func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey":
		return fmt.Errorf("%w: object", usecase.ErrNotFound)
	case "NoSuchBucket":
		return fmt.Errorf("%w: bucket not found: %v", usecase.ErrUpstream, err)
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return fmt.Errorf("%w: object store denied access: %v", usecase.ErrUpstream, err)
	default:
		if errors.Is(err, usecase.ErrUpstream) {
			return err
		}
		return fmt.Errorf("%w: %v", usecase.ErrUpstream, err)
	}
}
