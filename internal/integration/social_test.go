//go:build integration

package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/cache"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/videotube-ms-go/internal/testutil"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	commentSvc "github.com/fhuszti/videotube-ms-go/internal/usecase/comment"
	dashboardSvc "github.com/fhuszti/videotube-ms-go/internal/usecase/dashboard"
	likeSvc "github.com/fhuszti/videotube-ms-go/internal/usecase/like"
	playlistSvc "github.com/fhuszti/videotube-ms-go/internal/usecase/playlist"
	subscriptionSvc "github.com/fhuszti/videotube-ms-go/internal/usecase/subscription"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

func TestChannelActivity(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t, rootDSN)

	users := mariadb.NewUserRepository(db)
	videos := mariadb.NewVideoRepository(db)
	comments := mariadb.NewCommentRepository(db)
	likes := mariadb.NewLikeRepository(db)
	subs := mariadb.NewSubscriptionRepository(db)
	playlists := mariadb.NewPlaylistRepository(db)
	tweets := mariadb.NewTweetRepository(db)

	creator := createUser(t, users, "creator")
	fan := createUser(t, users, "fan")

	now := time.Now().UTC().Truncate(time.Second)
	video := &model.Video{
		ID:          uuid.NewUUID(),
		VideoFile:   "http://cdn.local/videotube/video/upload/a.mp4",
		Thumbnail:   "http://cdn.local/videotube/image/upload/a.png",
		Title:       "Popular",
		Description: "d",
		Owner:       creator.ID,
		Duration:    30,
		Views:       7,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := videos.Create(ctx, video); err != nil {
		t.Fatalf("create video: %v", err)
	}

	cmt, err := commentSvc.NewCommentService(comments, videos, uuid.NewUUID).AddComment(ctx, video.ID, fan.ID, "  great  ")
	if err != nil {
		t.Fatalf("AddComment() err = %v", err)
	}
	if cmt.Content != "great" {
		t.Errorf("content = %q; want trimmed", cmt.Content)
	}

	ca := cache.NewNoop()
	ls := likeSvc.NewLikeService(likes, videos, comments, tweets, ca)
	res, err := ls.ToggleLike(ctx, model.LikeTargetVideo, video.ID, fan.ID)
	if err != nil || !res.Added {
		t.Fatalf("ToggleLike() = %+v, %v; want added", res, err)
	}
	liked, err := ls.LikedVideos(ctx, fan.ID)
	if err != nil || len(liked) != 1 || liked[0].ID != video.ID {
		t.Fatalf("LikedVideos() = %v, %v", liked, err)
	}

	ss := subscriptionSvc.NewSubscriptionService(subs, users, ca, uuid.NewUUID)
	if _, err := ss.ToggleSubscription(ctx, fan.ID, fan.ID); !errors.Is(err, usecase.ErrValidation) {
		t.Errorf("self subscription err = %v; want ErrValidation", err)
	}
	if res, err := ss.ToggleSubscription(ctx, creator.ID, fan.ID); err != nil || !res.Added {
		t.Fatalf("ToggleSubscription() = %+v, %v; want added", res, err)
	}

	ps := playlistSvc.NewPlaylistService(playlists, videos, uuid.NewUUID)
	p, err := ps.CreatePlaylist(ctx, port.PlaylistInput{Name: "faves", Principal: fan.ID})
	if err != nil {
		t.Fatalf("CreatePlaylist() err = %v", err)
	}
	for i := 0; i < 2; i++ {
		if p, err = ps.AddVideo(ctx, p.ID, video.ID, fan.ID); err != nil {
			t.Fatalf("AddVideo() err = %v", err)
		}
	}
	if len(p.Videos) != 1 {
		t.Errorf("playlist videos = %v; want the video once", p.Videos)
	}
	if _, err := ps.AddVideo(ctx, p.ID, video.ID, creator.ID); !errors.Is(err, usecase.ErrForbidden) {
		t.Errorf("AddVideo() by non-owner err = %v; want ErrForbidden", err)
	}

	stats, err := dashboardSvc.NewDashboardService(videos, likes, subs, users, ca, time.Minute).ChannelStats(ctx, creator.ID)
	if err != nil {
		t.Fatalf("ChannelStats() err = %v", err)
	}
	if stats.TotalVideos != 1 || stats.TotalViews != 7 || stats.TotalLikes != 1 || stats.TotalSubs != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.MostViewedVideo == nil || stats.MostViewedVideo.ID != video.ID {
		t.Errorf("most viewed = %+v; want %s", stats.MostViewedVideo, video.ID)
	}
	if stats.ChannelName != creator.FullName || stats.Logo != creator.Avatar {
		t.Errorf("channel = %q/%q", stats.ChannelName, stats.Logo)
	}

	// unliking and unsubscribing remove the records again
	if res, err := ls.ToggleLike(ctx, model.LikeTargetVideo, video.ID, fan.ID); err != nil || res.Added {
		t.Errorf("second ToggleLike() = %+v, %v; want removed", res, err)
	}
	if res, err := ss.ToggleSubscription(ctx, creator.ID, fan.ID); err != nil || res.Added {
		t.Errorf("second ToggleSubscription() = %+v, %v; want removed", res, err)
	}
}
