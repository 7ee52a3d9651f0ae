package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fhuszti/videotube-ms-go/internal/api_context"
	"github.com/fhuszti/videotube-ms-go/internal/handler/api"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
	"github.com/go-chi/chi/v5"
)

// WithID parses the {id} URL param into the ctx.
func WithID() func(http.Handler) http.Handler {
	return withUUIDParam("id", api_context.IDKey)
}

// WithSubID parses the {subId} URL param into the ctx.
func WithSubID() func(http.Handler) http.Handler {
	return withUUIDParam("subId", api_context.SubIDKey)
}

func withUUIDParam(param string, key any) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := chi.URLParam(r, param)
			if raw == "" {
				api.WriteError(w, r, http.StatusBadRequest, fmt.Sprintf("%s is required", param), nil)
				return
			}
			parsedID, err := uuid.Parse(raw)
			if err != nil {
				api.WriteError(w, r, http.StatusBadRequest, fmt.Sprintf("%s %q is not a valid UUID", param, raw), nil)
				return
			}

			// stash it in context and call the real handler
			ctx := context.WithValue(r.Context(), key, parsedID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
