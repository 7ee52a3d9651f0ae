package api

import (
	"net/http"

	"github.com/fhuszti/videotube-ms-go/internal/port"
)

func ChannelStatsHandler(svc port.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := principal(w, r)
		if !ok {
			return
		}

		stats, err := svc.ChannelStats(r.Context(), user)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not compute channel stats")
			return
		}

		RespondCacheable(w, r, stats, "Info fetched successfully")
	}
}

func ChannelVideosHandler(svc port.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := principal(w, r)
		if !ok {
			return
		}

		videos, err := svc.ChannelVideos(r.Context(), user)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not list channel videos")
			return
		}

		RespondCacheable(w, r, videos, "Videos fetched successfully")
	}
}
