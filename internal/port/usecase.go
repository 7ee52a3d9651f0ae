package port

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type UUIDGen func() uuid.UUID

// VideoPublisher uploads a staged video and thumbnail and records the result.
type VideoPublisher interface {
	PublishVideo(ctx context.Context, in PublishVideoInput) (*model.Video, error)
}
type PublishVideoInput struct {
	Title       string
	Description string
	VideoFile   *StagedFile
	Thumbnail   *StagedFile
	Owner       uuid.UUID
}

// VideoUpdater overwrites title and description, and optionally the thumbnail.
type VideoUpdater interface {
	UpdateVideo(ctx context.Context, in UpdateVideoInput) (*model.Video, error)
}
type UpdateVideoInput struct {
	ID          uuid.UUID
	Title       string
	Description string
	Thumbnail   *StagedFile // optional
	Principal   uuid.UUID
}

// VideoDeleter removes the remote video, then the record.
type VideoDeleter interface {
	DeleteVideo(ctx context.Context, id, principal uuid.UUID) error
}

// VideoGetter returns a video and counts the view.
type VideoGetter interface {
	GetVideo(ctx context.Context, id uuid.UUID) (*model.Video, error)
}

type VideoLister interface {
	ListVideos(ctx context.Context, in ListVideosInput) ([]*model.Video, error)
}
type ListVideosInput struct {
	Page     int
	Limit    int
	Query    string
	SortBy   string
	SortType string
	UserID   string
}

type PublishToggler interface {
	TogglePublish(ctx context.Context, id, principal uuid.UUID) (*model.Video, error)
}

type CommentService interface {
	ListVideoComments(ctx context.Context, video uuid.UUID, page Page) ([]*model.Comment, error)
	AddComment(ctx context.Context, video, principal uuid.UUID, content string) (*model.Comment, error)
	UpdateComment(ctx context.Context, id, principal uuid.UUID, content string) (*model.Comment, error)
	DeleteComment(ctx context.Context, id, principal uuid.UUID) error
}

// ToggleResult tells whether a toggle created or removed its record.
type ToggleResult struct {
	Added  bool
	Record any
}

type LikeService interface {
	ToggleLike(ctx context.Context, target model.LikeTarget, subject, principal uuid.UUID) (ToggleResult, error)
	LikedVideos(ctx context.Context, principal uuid.UUID) ([]*model.Video, error)
}

type SubscriptionService interface {
	ToggleSubscription(ctx context.Context, channel, principal uuid.UUID) (ToggleResult, error)
	ChannelSubscribers(ctx context.Context, channel uuid.UUID) ([]uuid.UUID, error)
	SubscribedChannels(ctx context.Context, subscriber uuid.UUID) ([]*model.Subscription, error)
}

type PlaylistService interface {
	CreatePlaylist(ctx context.Context, in PlaylistInput) (*model.Playlist, error)
	GetPlaylist(ctx context.Context, id uuid.UUID) (*model.Playlist, error)
	UpdatePlaylist(ctx context.Context, id uuid.UUID, in PlaylistInput) (*model.Playlist, error)
	DeletePlaylist(ctx context.Context, id, principal uuid.UUID) error
	AddVideo(ctx context.Context, playlist, video, principal uuid.UUID) (*model.Playlist, error)
	RemoveVideo(ctx context.Context, playlist, video, principal uuid.UUID) (*model.Playlist, error)
	UserPlaylists(ctx context.Context, owner uuid.UUID) ([]*model.Playlist, error)
}
type PlaylistInput struct {
	Name        string
	Description string
	Principal   uuid.UUID
}

type TweetService interface {
	CreateTweet(ctx context.Context, principal uuid.UUID, content string) (*model.Tweet, error)
	UserTweets(ctx context.Context, owner uuid.UUID) ([]*model.Tweet, error)
	UpdateTweet(ctx context.Context, id, principal uuid.UUID, content string) (*model.Tweet, error)
	DeleteTweet(ctx context.Context, id, principal uuid.UUID) error
}

type DashboardService interface {
	ChannelStats(ctx context.Context, channel uuid.UUID) (*model.ChannelStats, error)
	ChannelVideos(ctx context.Context, channel uuid.UUID) ([]*model.Video, error)
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Login(ctx context.Context, in LoginInput) (LoginOutput, error)
	CurrentUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}
type RegisterInput struct {
	Username   string
	Email      string
	FullName   string
	Password   string
	Avatar     *StagedFile // optional
	CoverImage *StagedFile // optional
}
type LoginInput struct {
	Email    string
	Username string
	Password string
}
type LoginOutput struct {
	User        *model.User
	AccessToken string
	ExpiresAt   int64
}

// ThumbnailOptimiser replaces a video thumbnail with a resized WebP.
type ThumbnailOptimiser interface {
	OptimiseThumbnail(ctx context.Context, videoID uuid.UUID) error
}

// BacklogOptimiser enqueues optimisation for every thumbnail not optimised yet.
type BacklogOptimiser interface {
	OptimiseBacklog(ctx context.Context) (int, error)
}
