package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"civiclens/internal/api"
	"civiclens/internal/config"
	"civiclens/internal/geo"
	"civiclens/internal/redis"
	"civiclens/internal/service"
	"civiclens/internal/storage/gcs"
	"civiclens/internal/storage/postgres"
)

type Components struct {
	logger       *slog.Logger
	HttpServer   *api.Server
	Postgres     *postgres.Postgres
	Blobs        *gcs.BlobStore
	Redis        *redis.Redis
	NotifyQ      *redis.NotifyQueue
	NotifySender *service.NotifySender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing GCS blob store")
	blobs, err := gcs.NewBlobStore(ctx, cfg, logger)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init gcs: %w", err)
	}

	// Redis only backs the notification queue; no webhook, no Redis.
	var (
		redisClient *redis.Redis
		notifyQueue *redis.NotifyQueue
		sender      *service.NotifySender
	)
	if !cfg.Webhook.Disabled {
		logger.Info("Initializing Redis")
		redisClient, err = redis.NewRedis(ctx, cfg, logger)
		if err != nil {
			storage.Pool.Close()
			_ = blobs.Close()
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		notifyQueue = redis.NewNotifyQueue(redisClient.Client, "reports:notify")
		sender = service.NewNotifySender(logger, cfg.Webhook, notifyQueue)
	}

	repo := storage.Reports()

	var queue service.NotifyQueue
	if notifyQueue != nil {
		queue = notifyQueue
	}

	ingestSvc := service.NewIngestService(repo, blobs, queue, geo.India, cfg.Region.Enforced, cfg.Upload.MaxSizeBytes, logger)
	heatmapSvc := service.NewHeatmapService(repo, logger)
	querySvc := service.NewQueryService(repo, logger)

	srv := service.NewService(ingestSvc, heatmapSvc, querySvc)

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	return &Components{
		logger:       logger,
		HttpServer:   httpServer,
		Postgres:     storage,
		Blobs:        blobs,
		Redis:        redisClient,
		NotifyQ:      notifyQueue,
		NotifySender: sender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	c.Postgres.Pool.Close()
	if c.Blobs != nil {
		if err := c.Blobs.Close(); err != nil {
			c.logger.Error("GCS close failed", slog.String("err", err.Error()))
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components shut down",
		slog.Duration("latency", time.Since(start)))
}
