package api

import (
	"net/http"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/port"
)

func ListCommentsHandler(svc port.CommentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videoID, ok := pathID(w, r)
		if !ok {
			return
		}

		comments, err := svc.ListVideoComments(r.Context(), videoID, pageFromQuery(r))
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not list comments")
			return
		}

		RespondOK(w, http.StatusOK, comments, "Comments found")
		logger.Infof(r.Context(), "✅  Returned %d comments of video #%s", len(comments), videoID)
	}
}

func AddCommentHandler(svc port.CommentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videoID, ok := pathID(w, r)
		if !ok {
			return
		}
		user, ok := principal(w, r)
		if !ok {
			return
		}
		fields, err := readFields(w, r)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not add comment")
			return
		}

		c, err := svc.AddComment(r.Context(), videoID, user, fields["content"])
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not add comment")
			return
		}

		RespondOK(w, http.StatusCreated, c, "Comment added successfully")
		logger.Infof(r.Context(), "✅  Added comment #%s", c.ID)
	}
}

func UpdateCommentHandler(svc port.CommentService) http.HandlerFunc {
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
			WriteUsecaseError(w, r, err, "Could not update comment")
			return
		}

		c, err := svc.UpdateComment(r.Context(), id, user, fields["content"])
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not update comment")
			return
		}

		RespondOK(w, http.StatusOK, c, "Comment updated successfully")
		logger.Infof(r.Context(), "✅  Updated comment #%s", id)
	}
}

func DeleteCommentHandler(svc port.CommentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		user, ok := principal(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteComment(r.Context(), id, user); err != nil {
			WriteUsecaseError(w, r, err, "Could not delete comment")
			return
		}

		RespondOK(w, http.StatusOK, nil, "Comment deleted successfully")
		logger.Infof(r.Context(), "✅  Deleted comment #%s", id)
	}
}
