package tweet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
	"github.com/fhuszti/videotube-ms-go/internal/validation"
)

type tweetSrv struct {
	tweets port.TweetRepository
	newID  port.UUIDGen
}

// compile-time check: *tweetSrv must satisfy port.TweetService
var _ port.TweetService = (*tweetSrv)(nil)

func NewTweetService(tweets port.TweetRepository, newID port.UUIDGen) port.TweetService {
	if newID == nil {
		newID = uuid.NewUUID
	}
	return &tweetSrv{tweets: tweets, newID: newID}
}

type contentInput struct {
	Content string `json:"content" validate:"required,notblank"`
}

func (s *tweetSrv) CreateTweet(ctx context.Context, principal uuid.UUID, content string) (*model.Tweet, error) {
	if err := validation.ValidateStruct(contentInput{Content: content}); err != nil {
		return nil, fmt.Errorf("%w: %w", usecase.ErrValidation, err)
	}

	now := time.Now().UTC()
	t := &model.Tweet{
		ID:        s.newID(),
		Content:   strings.TrimSpace(content),
		Owner:     principal,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.tweets.Create(ctx, t); err != nil {
		return nil, err
	}
	logger.Infof(ctx, "tweet #%s created", t.ID)
	return t, nil
}

// UserTweets lists the tweets of owner, newest first.
func (s *tweetSrv) UserTweets(ctx context.Context, owner uuid.UUID) ([]*model.Tweet, error) {
	tweets, err := s.tweets.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if tweets == nil {
		tweets = []*model.Tweet{}
	}
	return tweets, nil
}

func (s *tweetSrv) UpdateTweet(ctx context.Context, id, principal uuid.UUID, content string) (*model.Tweet, error) {
	if err := validation.ValidateStruct(contentInput{Content: content}); err != nil {
		return nil, fmt.Errorf("%w: %w", usecase.ErrValidation, err)
	}

	t, err := s.tweets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := usecase.RequireOwner(t, principal, "tweet"); err != nil {
		return nil, err
	}

	t.Content = strings.TrimSpace(content)
	t.UpdatedAt = time.Now().UTC()
	if err := s.tweets.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *tweetSrv) DeleteTweet(ctx context.Context, id, principal uuid.UUID) error {
	t, err := s.tweets.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := usecase.RequireOwner(t, principal, "tweet"); err != nil {
		return err
	}
	if err := s.tweets.Delete(ctx, t.ID); err != nil {
		return err
	}
	logger.Infof(ctx, "tweet #%s deleted", t.ID)
	return nil
}
