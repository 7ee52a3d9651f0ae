package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/config"
	"github.com/fhuszti/videotube-ms-go/internal/db"
	workerHandler "github.com/fhuszti/videotube-ms-go/internal/handler/worker"
	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/optimiser"
	"github.com/fhuszti/videotube-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/videotube-ms-go/internal/storage"
	"github.com/fhuszti/videotube-ms-go/internal/task"
	thumbnailSvc "github.com/fhuszti/videotube-ms-go/internal/usecase/thumbnail"
	"github.com/hibiken/asynq"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)
	strg := initStorage(ctx, cfg)

	repo := mariadb.NewVideoRepository(database.DB)
	opt := optimiser.NewOptimiser(optimiser.NewWebPEncoder())
	optimiseSvc := thumbnailSvc.NewThumbnailOptimiser(repo, strg, opt, cfg.ThumbnailMaxWidth)

	mux := asynq.NewServeMux()
	mux.Handle(task.TypeOptimiseThumbnail, workerHandler.NewOptimiseThumbnailTaskHandler(optimiseSvc))

	runWorker(ctx, mux, cfg, database)
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

func initStorage(ctx context.Context, cfg *config.Settings) *storage.ObjectStore {
	client, err := storage.NewMinioClient(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}
	return storage.NewObjectStore(client, cfg.MediaBucket, cfg.MediaPublicURL)
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings, database *db.Database) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{
		Concurrency:     10,
		ShutdownTimeout: 30 * time.Second,
	})

	if err := srv.Start(mux); err != nil {
		logger.Errorf(ctx, "❌  Worker failed to start: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "🚀 Worker started")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// stop accepting new tasks, wait up to ShutdownTimeout for in-flight ones
	srv.Shutdown()

	if err := database.Close(); err != nil {
		logger.Warnf(ctx, "DB close error: %v", err)
	}
	logger.Info(ctx, "✅  Worker gracefully stopped")
}
