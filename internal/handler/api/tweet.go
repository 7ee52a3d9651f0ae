package api

import (
	"net/http"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/port"
)

func CreateTweetHandler(svc port.TweetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := principal(w, r)
		if !ok {
			return
		}
		fields, err := readFields(w, r)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not create tweet")
			return
		}

		t, err := svc.CreateTweet(r.Context(), user, fields["content"])
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not create tweet")
			return
		}

		RespondOK(w, http.StatusCreated, t, "Tweet added successfully")
		logger.Infof(r.Context(), "✅  Created tweet #%s", t.ID)
	}
}

func UserTweetsHandler(svc port.TweetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := pathID(w, r)
		if !ok {
			return
		}

		tweets, err := svc.UserTweets(r.Context(), owner)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not list tweets")
			return
		}

		RespondOK(w, http.StatusOK, tweets, "User tweets retrieved successfully")
	}
}

func UpdateTweetHandler(svc port.TweetService) http.HandlerFunc {
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
			WriteUsecaseError(w, r, err, "Could not update tweet")
			return
		}

		t, err := svc.UpdateTweet(r.Context(), id, user, fields["content"])
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not update tweet")
			return
		}

		RespondOK(w, http.StatusOK, t, "Tweet updated successfully")
		logger.Infof(r.Context(), "✅  Updated tweet #%s", id)
	}
}

func DeleteTweetHandler(svc port.TweetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		user, ok := principal(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteTweet(r.Context(), id, user); err != nil {
			WriteUsecaseError(w, r, err, "Could not delete tweet")
			return
		}

		RespondOK(w, http.StatusOK, nil, "Tweet deleted successfully")
		logger.Infof(r.Context(), "✅  Deleted tweet #%s", id)
	}
}
