package main

import (
	"context"
	"os"

	"github.com/fhuszti/videotube-ms-go/internal/config"
	"github.com/fhuszti/videotube-ms-go/internal/db"
	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/videotube-ms-go/internal/task"
	thumbnailSvc "github.com/fhuszti/videotube-ms-go/internal/usecase/thumbnail"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "❌  Redis not configured: this command requires a running Redis instance")
		os.Exit(1)
	}

	logger.Init()

	database, err := db.NewFromConfig(db.MariaDbConfig{
		DSN:             cfg.MariaDBDSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	dispatcher := task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
	repo := mariadb.NewVideoRepository(database.DB)

	n, err := thumbnailSvc.NewBacklogOptimiser(repo, dispatcher).OptimiseBacklog(ctx)
	closeAll(ctx, database, dispatcher)
	if err != nil {
		logger.Errorf(ctx, "❌  Backlog optimisation failed after %d tasks: %v", n, err)
		os.Exit(1)
	}
	logger.Infof(ctx, "✅  Enqueued thumbnail optimisation for %d videos", n)
}

func closeAll(ctx context.Context, database *db.Database, dispatcher *task.Dispatcher) {
	if err := dispatcher.Close(); err != nil {
		logger.Warnf(ctx, "dispatcher close error: %v", err)
	}
	if err := database.Close(); err != nil {
		logger.Warnf(ctx, "DB close error: %v", err)
	}
}
