package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/fhuszti/videotube-ms-go/internal/api_context"
	"github.com/fhuszti/videotube-ms-go/internal/handler/api"
	"github.com/fhuszti/videotube-ms-go/internal/port"
)

// WithAuth requires an access token, read from the accessToken cookie or a Bearer
// Authorization header, and stores its subject as the authenticated user ID.
func WithAuth(tokens port.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := tokenFromRequest(r)
			if raw == "" {
				api.WriteError(w, r, http.StatusUnauthorized, "Unauthorized request", nil)
				return
			}

			userID, err := tokens.Parse(raw)
			if err != nil {
				api.WriteError(w, r, http.StatusUnauthorized, "Invalid access token", err)
				return
			}

			ctx := context.WithValue(r.Context(), api_context.AuthUserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(api.AccessTokenCookie); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}
