package api

import (
	"context"
	"net/http"
)

// HealthChecker is satisfied by *db.Database.
type HealthChecker interface {
	Healthy(ctx context.Context) error
}

func HealthcheckHandler(db HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Healthy(r.Context()); err != nil {
			WriteError(w, r, http.StatusServiceUnavailable, "Database is unreachable", err)
			return
		}
		RespondOK(w, http.StatusOK, "OK", "Health check passed")
	}
}
