package model

import (
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

// LikeTarget is the kind of resource a like points at.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

// Like holds exactly one of Video, Comment or Tweet.
type Like struct {
	ID        uuid.UUID  `json:"_id"`
	Video     *uuid.UUID `json:"video,omitempty"`
	Comment   *uuid.UUID `json:"comment,omitempty"`
	Tweet     *uuid.UUID `json:"tweet,omitempty"`
	LikedBy   uuid.UUID  `json:"likedBy"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (l *Like) OwnerID() uuid.UUID { return l.LikedBy }

// NewLike builds an unsaved like of target for the given subject.
func NewLike(target LikeTarget, subject, likedBy uuid.UUID) *Like {
	l := &Like{ID: uuid.NewUUID(), LikedBy: likedBy, CreatedAt: time.Now().UTC()}
	switch target {
	case LikeTargetVideo:
		l.Video = &subject
	case LikeTargetComment:
		l.Comment = &subject
	case LikeTargetTweet:
		l.Tweet = &subject
	}
	return l
}
