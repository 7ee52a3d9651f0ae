package port

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type VideoRepository interface {
	Create(ctx context.Context, v *model.Video) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	Update(ctx context.Context, v *model.Video) error
	// SwapThumbnail points video id at the optimised thumbnail to, as long as it still refers
	// to from. swapped is false when the thumbnail changed in between.
	SwapThumbnail(ctx context.Context, id uuid.UUID, from, to string) (swapped bool, err error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter VideoFilter, page Page) ([]*model.Video, error)
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]*model.Video, error)
	ListUnoptimisedThumbnails(ctx context.Context) ([]uuid.UUID, error)
	ChannelTotals(ctx context.Context, owner uuid.UUID) (videos int64, views int64, err error)
	MostViewed(ctx context.Context, owner uuid.UUID) (*model.Video, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByLogin(ctx context.Context, email, username string) (*model.User, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	Update(ctx context.Context, c *model.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByVideo(ctx context.Context, video uuid.UUID, page Page) ([]*model.Comment, error)
}

type LikeRepository interface {
	// Toggle removes the like when present, otherwise inserts l. added reports which happened.
	Toggle(ctx context.Context, l *model.Like, target model.LikeTarget) (added bool, err error)
	LikedVideos(ctx context.Context, user uuid.UUID) ([]*model.Video, error)
	CountForOwnerVideos(ctx context.Context, owner uuid.UUID) (int64, error)
}

type SubscriptionRepository interface {
	// Toggle removes the subscription when present, otherwise inserts s.
	Toggle(ctx context.Context, s *model.Subscription) (added bool, err error)
	SubscriberIDs(ctx context.Context, channel uuid.UUID) ([]uuid.UUID, error)
	ListBySubscriber(ctx context.Context, subscriber uuid.UUID) ([]*model.Subscription, error)
	CountSubscribers(ctx context.Context, channel uuid.UUID) (int64, error)
}

type PlaylistRepository interface {
	Create(ctx context.Context, p *model.Playlist) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error)
	Update(ctx context.Context, p *model.Playlist) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddVideo(ctx context.Context, playlist, video uuid.UUID) error
	RemoveVideo(ctx context.Context, playlist, video uuid.UUID) error
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]*model.Playlist, error)
}

type TweetRepository interface {
	Create(ctx context.Context, t *model.Tweet) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error)
	Update(ctx context.Context, t *model.Tweet) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]*model.Tweet, error)
}
