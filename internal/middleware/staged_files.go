package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/fhuszti/videotube-ms-go/internal/api_context"
	"github.com/fhuszti/videotube-ms-go/internal/handler/api"
	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/staging"
)

// WithStagedFiles writes the listed multipart file fields to the staging directory before the
// handler runs. Whatever the handler leaves behind is removed once it returns.
// Non multipart requests pass through untouched.
func WithStagedFiles(stager *staging.Stager, fields ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !staging.IsMultipart(r) {
				next.ServeHTTP(w, r)
				return
			}

			files, err := stager.Stage(w, r, fields...)
			if err != nil {
				switch {
				case errors.Is(err, staging.ErrTooLarge):
					api.WriteError(w, r, http.StatusRequestEntityTooLarge, "Uploaded files are too large", err)
				case errors.Is(err, staging.ErrMalformed):
					api.WriteError(w, r, http.StatusBadRequest, "Invalid multipart body", err)
				default:
					api.WriteError(w, r, http.StatusInternalServerError, "Could not stage uploaded files", err)
				}
				return
			}

			defer func() {
				for _, rmErr := range staging.RemoveAll(files) {
					logger.Warnf(r.Context(), "failed to remove staged file: %v", rmErr)
				}
			}()

			ctx := context.WithValue(r.Context(), api_context.StagedFilesKey, files)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
