package api

import (
	"net/http"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
)

// ToggleLikeHandler likes or unlikes the resource of kind target named by the {id} param.
func ToggleLikeHandler(svc port.LikeService, target model.LikeTarget) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := pathID(w, r)
		if !ok {
			return
		}
		user, ok := principal(w, r)
		if !ok {
			return
		}

		res, err := svc.ToggleLike(r.Context(), target, subject, user)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not toggle like")
			return
		}

		if !res.Added {
			RespondOK(w, http.StatusOK, nil, "like removed")
			logger.Infof(r.Context(), "✅  Removed like on %s #%s", target, subject)
			return
		}
		RespondOK(w, http.StatusCreated, res.Record, "liked")
		logger.Infof(r.Context(), "✅  Liked %s #%s", target, subject)
	}
}

func LikedVideosHandler(svc port.LikeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := principal(w, r)
		if !ok {
			return
		}

		videos, err := svc.LikedVideos(r.Context(), user)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not fetch liked videos")
			return
		}

		RespondOK(w, http.StatusOK, videos, "liked videos fetched successfully")
	}
}
