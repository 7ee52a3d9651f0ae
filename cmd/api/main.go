package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/auth"
	"github.com/fhuszti/videotube-ms-go/internal/cache"
	"github.com/fhuszti/videotube-ms-go/internal/config"
	"github.com/fhuszti/videotube-ms-go/internal/db"
	"github.com/fhuszti/videotube-ms-go/internal/handler/api"
	"github.com/fhuszti/videotube-ms-go/internal/logger"
	cMiddleware "github.com/fhuszti/videotube-ms-go/internal/middleware"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/videotube-ms-go/internal/staging"
	"github.com/fhuszti/videotube-ms-go/internal/storage"
	"github.com/fhuszti/videotube-ms-go/internal/task"
	commentSvc "github.com/fhuszti/videotube-ms-go/internal/usecase/comment"
	dashboardSvc "github.com/fhuszti/videotube-ms-go/internal/usecase/dashboard"
	likeSvc "github.com/fhuszti/videotube-ms-go/internal/usecase/like"
	playlistSvc "github.com/fhuszti/videotube-ms-go/internal/usecase/playlist"
	subscriptionSvc "github.com/fhuszti/videotube-ms-go/internal/usecase/subscription"
	tweetSvc "github.com/fhuszti/videotube-ms-go/internal/usecase/tweet"
	userSvc "github.com/fhuszti/videotube-ms-go/internal/usecase/user"
	videoSvc "github.com/fhuszti/videotube-ms-go/internal/usecase/video"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/net/netutil"
)

type repositories struct {
	videos    *mariadb.VideoRepository
	users     *mariadb.UserRepository
	comments  *mariadb.CommentRepository
	likes     *mariadb.LikeRepository
	subs      *mariadb.SubscriptionRepository
	playlists *mariadb.PlaylistRepository
	tweets    *mariadb.TweetRepository
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)
	strg := initStorage(ctx, cfg)

	var ca port.StatsCache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		d := task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		defer func() {
			if err := d.Close(); err != nil {
				logger.Warnf(ctx, "dispatcher close error: %v", err)
			}
		}()
		dispatcher = d
		logger.Info(ctx, "✅  Redis cache and task queue enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured, stats caching and thumbnail optimisation are disabled")
	}

	repos := repositories{
		videos:    mariadb.NewVideoRepository(database.DB),
		users:     mariadb.NewUserRepository(database.DB),
		comments:  mariadb.NewCommentRepository(database.DB),
		likes:     mariadb.NewLikeRepository(database.DB),
		subs:      mariadb.NewSubscriptionRepository(database.DB),
		playlists: mariadb.NewPlaylistRepository(database.DB),
		tweets:    mariadb.NewTweetRepository(database.DB),
	}
	tokens := auth.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL)
	stager := staging.New(cfg.StagingDir, cfg.MaxUploadBytes)

	r := initRouter(ctx, database)
	requireAuth := cMiddleware.WithAuth(tokens)
	withID := cMiddleware.WithID()
	withSubID := cMiddleware.WithSubID()

	users := userSvc.NewUserService(repos.users, strg, auth.NewBcryptHasher(bcrypt.DefaultCost), tokens, uuid.NewUUID)
	r.Route("/users", func(r chi.Router) {
		r.With(cMiddleware.WithStagedFiles(stager, api.AvatarField, api.CoverImageField)).
			Post("/register", api.RegisterHandler(users))
		r.Post("/login", api.LoginHandler(users, cfg.CookieSecure))
		r.Post("/logout", api.LogoutHandler(cfg.CookieSecure))
		r.With(requireAuth).Get("/current-user", api.CurrentUserHandler(users))
	})

	r.Route("/videos", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", api.ListVideosHandler(videoSvc.NewVideoLister(repos.videos)))
		r.With(cMiddleware.WithStagedFiles(stager, api.VideoFileField, api.ThumbnailField)).
			Post("/", api.PublishVideoHandler(videoSvc.NewVideoPublisher(repos.videos, strg, ca, dispatcher, uuid.NewUUID)))
		r.With(withID).Get("/{id}", api.GetVideoHandler(videoSvc.NewVideoGetter(repos.videos)))
		r.With(withID, cMiddleware.WithStagedFiles(stager, api.ThumbnailField)).
			Patch("/{id}", api.UpdateVideoHandler(videoSvc.NewVideoUpdater(repos.videos, strg, ca, dispatcher)))
		r.With(withID).Delete("/{id}", api.DeleteVideoHandler(videoSvc.NewVideoDeleter(repos.videos, strg, ca)))
		r.With(withID).Patch("/toggle/publish/{id}", api.TogglePublishHandler(videoSvc.NewPublishToggler(repos.videos)))
	})

	comments := commentSvc.NewCommentService(repos.comments, repos.videos, uuid.NewUUID)
	r.Route("/comment", func(r chi.Router) {
		r.Use(requireAuth)
		r.With(withID).Get("/{id}", api.ListCommentsHandler(comments))
		r.With(withID).Post("/{id}", api.AddCommentHandler(comments))
		r.With(withID).Patch("/c/{id}", api.UpdateCommentHandler(comments))
		r.With(withID).Delete("/c/{id}", api.DeleteCommentHandler(comments))
	})

	likes := likeSvc.NewLikeService(repos.likes, repos.videos, repos.comments, repos.tweets, ca)
	r.Route("/like", func(r chi.Router) {
		r.Use(requireAuth)
		r.With(withID).Post("/toggle/v/{id}", api.ToggleLikeHandler(likes, model.LikeTargetVideo))
		r.With(withID).Post("/toggle/c/{id}", api.ToggleLikeHandler(likes, model.LikeTargetComment))
		r.With(withID).Post("/toggle/t/{id}", api.ToggleLikeHandler(likes, model.LikeTargetTweet))
		r.Get("/videos", api.LikedVideosHandler(likes))
	})

	subs := subscriptionSvc.NewSubscriptionService(repos.subs, repos.users, ca, uuid.NewUUID)
	r.Route("/subscribe", func(r chi.Router) {
		r.Use(requireAuth)
		r.With(withID).Post("/c/{id}", api.ToggleSubscriptionHandler(subs))
		r.With(withID).Get("/c/{id}", api.ChannelSubscribersHandler(subs))
		r.With(withID).Get("/u/{id}", api.SubscribedChannelsHandler(subs))
	})

	playlists := playlistSvc.NewPlaylistService(repos.playlists, repos.videos, uuid.NewUUID)
	r.Route("/playlist", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", api.CreatePlaylistHandler(playlists))
		r.With(withID).Get("/{id}", api.GetPlaylistHandler(playlists))
		r.With(withID).Patch("/{id}", api.UpdatePlaylistHandler(playlists))
		r.With(withID).Delete("/{id}", api.DeletePlaylistHandler(playlists))
		r.With(withSubID, withID).Patch("/add/{subId}/{id}", api.AddPlaylistVideoHandler(playlists))
		r.With(withSubID, withID).Patch("/remove/{subId}/{id}", api.RemovePlaylistVideoHandler(playlists))
		r.With(withID).Get("/user/{id}", api.UserPlaylistsHandler(playlists))
	})

	tweets := tweetSvc.NewTweetService(repos.tweets, uuid.NewUUID)
	r.Route("/tweet", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", api.CreateTweetHandler(tweets))
		r.With(withID).Get("/user/{id}", api.UserTweetsHandler(tweets))
		r.With(withID).Patch("/{id}", api.UpdateTweetHandler(tweets))
		r.With(withID).Delete("/{id}", api.DeleteTweetHandler(tweets))
	})

	dashboard := dashboardSvc.NewDashboardService(repos.videos, repos.likes, repos.subs, repos.users, ca, cfg.StatsCacheTTL)
	r.Route("/dashboard", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/stats", api.ChannelStatsHandler(dashboard))
		r.Get("/videos", api.ChannelVideosHandler(dashboard))
	})

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context, database *db.Database) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cMiddleware.WithMetrics)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	r.Get("/healthcheck", api.HealthcheckHandler(database))
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) *storage.ObjectStore {
	client, err := storage.NewMinioClient(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	strg := storage.NewObjectStore(client, cfg.MediaBucket, cfg.MediaPublicURL)
	if err := strg.InitBucket(ctx); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.MediaBucket, err)
		os.Exit(1)
	}

	return strg
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		logger.Errorf(ctx, "❌  Listen error: %v", err)
		os.Exit(1)
	}
	if cfg.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxConnections)
		logger.Infof(ctx, "limiting the API to %d concurrent connections", cfg.MaxConnections)
	}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Serve error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
