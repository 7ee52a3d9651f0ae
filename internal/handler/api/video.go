package api

import (
	"net/http"
	"strconv"

	"github.com/fhuszti/videotube-ms-go/internal/api_context"
	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/port"
)

// Multipart fields staged for the video routes.
const (
	VideoFileField = "videoFile"
	ThumbnailField = "thumbnail"
)

func ListVideosHandler(svc port.VideoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page, _ := strconv.Atoi(q.Get("page"))
		limit, _ := strconv.Atoi(q.Get("limit"))

		videos, err := svc.ListVideos(r.Context(), port.ListVideosInput{
			Page:     page,
			Limit:    limit,
			Query:    q.Get("query"),
			SortBy:   q.Get("sortBy"),
			SortType: q.Get("sortType"),
			UserID:   q.Get("userId"),
		})
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not list videos")
			return
		}

		RespondOK(w, http.StatusOK, videos, "Videos retrieved successfully")
		logger.Infof(r.Context(), "✅  Returned %d videos", len(videos))
	}
}

func PublishVideoHandler(svc port.VideoPublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := principal(w, r)
		if !ok {
			return
		}
		fields, err := readFields(w, r)
		if err != nil {
			WriteUsecaseError(w, r, err, "An error occurred while publishing the video")
			return
		}

		v, err := svc.PublishVideo(r.Context(), port.PublishVideoInput{
			Title:       fields["title"],
			Description: fields["description"],
			VideoFile:   api_context.StagedFile(r.Context(), VideoFileField),
			Thumbnail:   api_context.StagedFile(r.Context(), ThumbnailField),
			Owner:       owner,
		})
		if err != nil {
			WriteUsecaseError(w, r, err, "An error occurred while publishing the video")
			return
		}

		RespondOK(w, http.StatusCreated, v, "Video published successfully")
		logger.Infof(r.Context(), "✅  Successfully published video #%s", v.ID)
	}
}

func GetVideoHandler(svc port.VideoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		v, err := svc.GetVideo(r.Context(), id)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not get video")
			return
		}

		RespondOK(w, http.StatusOK, v, "Video retrieved successfully")
		logger.Infof(r.Context(), "✅  Successfully returned video #%s", id)
	}
}

func UpdateVideoHandler(svc port.VideoUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		user, ok := principal(w, r)
		if !ok {
			return
		}
		fields, err := readFields(w, r)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not update video")
			return
		}

		v, err := svc.UpdateVideo(r.Context(), port.UpdateVideoInput{
			ID:          id,
			Title:       fields["title"],
			Description: fields["description"],
			Thumbnail:   api_context.StagedFile(r.Context(), ThumbnailField),
			Principal:   user,
		})
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not update video")
			return
		}

		RespondOK(w, http.StatusOK, v, "Video updated successfully")
		logger.Infof(r.Context(), "✅  Successfully updated video #%s", id)
	}
}

func DeleteVideoHandler(svc port.VideoDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		user, ok := principal(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteVideo(r.Context(), id, user); err != nil {
			WriteUsecaseError(w, r, err, "Could not delete video")
			return
		}

		RespondOK(w, http.StatusOK, nil, "Video deleted successfully")
		logger.Infof(r.Context(), "✅  Successfully deleted video #%s", id)
	}
}

func TogglePublishHandler(svc port.PublishToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		user, ok := principal(w, r)
		if !ok {
			return
		}

		v, err := svc.TogglePublish(r.Context(), id, user)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not toggle publish status")
			return
		}

		RespondOK(w, http.StatusOK, v, "Publish status toggled successfully")
		logger.Infof(r.Context(), "✅  Video #%s published=%t", id, v.IsPublished)
	}
}
