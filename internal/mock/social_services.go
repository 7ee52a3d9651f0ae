package mock

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type CommentService struct {
	Out  *model.Comment
	List []*model.Comment
	Err  error

	Called       bool
	GotID        uuid.UUID
	GotPrincipal uuid.UUID
	GotContent   string
	GotPage      port.Page
}

var _ port.CommentService = (*CommentService)(nil)

func (m *CommentService) ListVideoComments(_ context.Context, video uuid.UUID, page port.Page) ([]*model.Comment, error) {
	m.Called = true
	m.GotID, m.GotPage = video, page
	return m.List, m.Err
}

func (m *CommentService) AddComment(_ context.Context, video, principal uuid.UUID, content string) (*model.Comment, error) {
	m.Called = true
	m.GotID, m.GotPrincipal, m.GotContent = video, principal, content
	return m.Out, m.Err
}

func (m *CommentService) UpdateComment(_ context.Context, id, principal uuid.UUID, content string) (*model.Comment, error) {
	m.Called = true
	m.GotID, m.GotPrincipal, m.GotContent = id, principal, content
	return m.Out, m.Err
}

func (m *CommentService) DeleteComment(_ context.Context, id, principal uuid.UUID) error {
	m.Called = true
	m.GotID, m.GotPrincipal = id, principal
	return m.Err
}

type LikeService struct {
	Result port.ToggleResult
	Videos []*model.Video
	Err    error

	Called       bool
	GotTarget    model.LikeTarget
	GotSubject   uuid.UUID
	GotPrincipal uuid.UUID
}

var _ port.LikeService = (*LikeService)(nil)

func (m *LikeService) ToggleLike(_ context.Context, target model.LikeTarget, subject, principal uuid.UUID) (port.ToggleResult, error) {
	m.Called = true
	m.GotTarget, m.GotSubject, m.GotPrincipal = target, subject, principal
	return m.Result, m.Err
}

func (m *LikeService) LikedVideos(_ context.Context, principal uuid.UUID) ([]*model.Video, error) {
	m.Called = true
	m.GotPrincipal = principal
	return m.Videos, m.Err
}

type SubscriptionService struct {
	Result      port.ToggleResult
	Subscribers []uuid.UUID
	Channels    []*model.Subscription
	Err         error

	Called       bool
	GotChannel   uuid.UUID
	GotPrincipal uuid.UUID
}

var _ port.SubscriptionService = (*SubscriptionService)(nil)

func (m *SubscriptionService) ToggleSubscription(_ context.Context, channel, principal uuid.UUID) (port.ToggleResult, error) {
	m.Called = true
	m.GotChannel, m.GotPrincipal = channel, principal
	return m.Result, m.Err
}

func (m *SubscriptionService) ChannelSubscribers(_ context.Context, channel uuid.UUID) ([]uuid.UUID, error) {
	m.Called = true
	m.GotChannel = channel
	return m.Subscribers, m.Err
}

func (m *SubscriptionService) SubscribedChannels(_ context.Context, subscriber uuid.UUID) ([]*model.Subscription, error) {
	m.Called = true
	m.GotPrincipal = subscriber
	return m.Channels, m.Err
}

type PlaylistService struct {
	Out  *model.Playlist
	List []*model.Playlist
	Err  error

	Called       bool
	GotIn        port.PlaylistInput
	GotID        uuid.UUID
	GotVideo     uuid.UUID
	GotPrincipal uuid.UUID
}

var _ port.PlaylistService = (*PlaylistService)(nil)

func (m *PlaylistService) CreatePlaylist(_ context.Context, in port.PlaylistInput) (*model.Playlist, error) {
	m.Called = true
	m.GotIn = in
	return m.Out, m.Err
}

func (m *PlaylistService) GetPlaylist(_ context.Context, id uuid.UUID) (*model.Playlist, error) {
	m.Called = true
	m.GotID = id
	return m.Out, m.Err
}

func (m *PlaylistService) UpdatePlaylist(_ context.Context, id uuid.UUID, in port.PlaylistInput) (*model.Playlist, error) {
	m.Called = true
	m.GotID, m.GotIn = id, in
	return m.Out, m.Err
}

func (m *PlaylistService) DeletePlaylist(_ context.Context, id, principal uuid.UUID) error {
	m.Called = true
	m.GotID, m.GotPrincipal = id, principal
	return m.Err
}

func (m *PlaylistService) AddVideo(_ context.Context, playlist, video, principal uuid.UUID) (*model.Playlist, error) {
	m.Called = true
	m.GotID, m.GotVideo, m.GotPrincipal = playlist, video, principal
	return m.Out, m.Err
}

func (m *PlaylistService) RemoveVideo(_ context.Context, playlist, video, principal uuid.UUID) (*model.Playlist, error) {
	m.Called = true
	m.GotID, m.GotVideo, m.GotPrincipal = playlist, video, principal
	return m.Out, m.Err
}

func (m *PlaylistService) UserPlaylists(_ context.Context, owner uuid.UUID) ([]*model.Playlist, error) {
	m.Called = true
	m.GotID = owner
	return m.List, m.Err
}

type TweetService struct {
	Out  *model.Tweet
	List []*model.Tweet
	Err  error

	Called       bool
	GotID        uuid.UUID
	GotPrincipal uuid.UUID
	GotContent   string
}

var _ port.TweetService = (*TweetService)(nil)

func (m *TweetService) CreateTweet(_ context.Context, principal uuid.UUID, content string) (*model.Tweet, error) {
	m.Called = true
	m.GotPrincipal, m.GotContent = principal, content
	return m.Out, m.Err
}

func (m *TweetService) UserTweets(_ context.Context, owner uuid.UUID) ([]*model.Tweet, error) {
	m.Called = true
	m.GotID = owner
	return m.List, m.Err
}

func (m *TweetService) UpdateTweet(_ context.Context, id, principal uuid.UUID, content string) (*model.Tweet, error) {
	m.Called = true
	m.GotID, m.GotPrincipal, m.GotContent = id, principal, content
	return m.Out, m.Err
}

func (m *TweetService) DeleteTweet(_ context.Context, id, principal uuid.UUID) error {
	m.Called = true
	m.GotID, m.GotPrincipal = id, principal
	return m.Err
}

type DashboardService struct {
	Stats  *model.ChannelStats
	Videos []*model.Video
	Err    error

	Called     bool
	GotChannel uuid.UUID
}

var _ port.DashboardService = (*DashboardService)(nil)

func (m *DashboardService) ChannelStats(_ context.Context, channel uuid.UUID) (*model.ChannelStats, error) {
	m.Called = true
	m.GotChannel = channel
	return m.Stats, m.Err
}

func (m *DashboardService) ChannelVideos(_ context.Context, channel uuid.UUID) ([]*model.Video, error) {
	m.Called = true
	m.GotChannel = channel
	return m.Videos, m.Err
}

type UserService struct {
	Out      *model.User
	LoginOut port.LoginOutput
	Err      error

	Called     bool
	RegisterIn port.RegisterInput
	LoginIn    port.LoginInput
	GotID      uuid.UUID
}

var _ port.UserService = (*UserService)(nil)

func (m *UserService) Register(_ context.Context, in port.RegisterInput) (*model.User, error) {
	m.Called = true
	m.RegisterIn = in
	return m.Out, m.Err
}

func (m *UserService) Login(_ context.Context, in port.LoginInput) (port.LoginOutput, error) {
	m.Called = true
	m.LoginIn = in
	return m.LoginOut, m.Err
}

func (m *UserService) CurrentUser(_ context.Context, id uuid.UUID) (*model.User, error) {
	m.Called = true
	m.GotID = id
	return m.Out, m.Err
}

// ThumbnailOptimiserService records which video the worker asked to optimise.
type ThumbnailOptimiserService struct {
	Err    error
	Called bool
	GotID  uuid.UUID
}

var _ port.ThumbnailOptimiser = (*ThumbnailOptimiserService)(nil)

func (m *ThumbnailOptimiserService) OptimiseThumbnail(_ context.Context, id uuid.UUID) error {
	m.Called = true
	m.GotID = id
	return m.Err
}
