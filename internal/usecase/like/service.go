package like

import (
	"context"
	"fmt"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type likeSrv struct {
	likes    port.LikeRepository
	videos   port.VideoRepository
	comments port.CommentRepository
	tweets   port.TweetRepository
	cache    port.StatsCache
}

// compile-time check: *likeSrv must satisfy port.LikeService
var _ port.LikeService = (*likeSrv)(nil)

func NewLikeService(likes port.LikeRepository, videos port.VideoRepository, comments port.CommentRepository, tweets port.TweetRepository, cache port.StatsCache) port.LikeService {
	return &likeSrv{likes: likes, videos: videos, comments: comments, tweets: tweets, cache: cache}
}

// ToggleLike likes subject on behalf of principal, or removes the like when one exists.
func (s *likeSrv) ToggleLike(ctx context.Context, target model.LikeTarget, subject, principal uuid.UUID) (port.ToggleResult, error) {
	channel, err := s.subjectOwner(ctx, target, subject)
	if err != nil {
		return port.ToggleResult{}, err
	}

	l := model.NewLike(target, subject, principal)
	added, err := s.likes.Toggle(ctx, l, target)
	if err != nil {
		return port.ToggleResult{}, err
	}

	if target == model.LikeTargetVideo {
		if err := s.cache.DeleteChannelStats(ctx, channel); err != nil {
			logger.Warnf(ctx, "failed to invalidate stats of channel #%s: %v", channel, err)
		}
	}

	if !added {
		logger.Infof(ctx, "like on %s #%s removed", target, subject)
		return port.ToggleResult{Added: false}, nil
	}
	logger.Infof(ctx, "%s #%s liked", target, subject)
	return port.ToggleResult{Added: true, Record: l}, nil
}

// subjectOwner checks that subject exists and returns who owns it.
func (s *likeSrv) subjectOwner(ctx context.Context, target model.LikeTarget, subject uuid.UUID) (uuid.UUID, error) {
	var (
		rec model.Owned
		err error
	)
	switch target {
	case model.LikeTargetVideo:
		rec, err = s.videos.GetByID(ctx, subject)
	case model.LikeTargetComment:
		rec, err = s.comments.GetByID(ctx, subject)
	case model.LikeTargetTweet:
		rec, err = s.tweets.GetByID(ctx, subject)
	default:
		return uuid.Nil, fmt.Errorf("%w: cannot like a %q", usecase.ErrValidation, target)
	}
	if err != nil {
		return uuid.Nil, err
	}
	return rec.OwnerID(), nil
}

func (s *likeSrv) LikedVideos(ctx context.Context, principal uuid.UUID) ([]*model.Video, error) {
	videos, err := s.likes.LikedVideos(ctx, principal)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []*model.Video{}
	}
	return videos, nil
}
