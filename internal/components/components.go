package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/vietts/insicuri/internal/api"
	"github.com/vietts/insicuri/internal/auth"
	"github.com/vietts/insicuri/internal/config"
	"github.com/vietts/insicuri/internal/service"
	"github.com/vietts/insicuri/internal/storage/media"
	"github.com/vietts/insicuri/internal/storage/postgres"
	"github.com/vietts/insicuri/internal/storage/redis"
	"github.com/vietts/insicuri/internal/workers"
	"github.com/vietts/insicuri/pkg/logger"
)

type Components struct {
	logger         *slog.Logger
	HttpServer     *api.Server
	Postgres       *postgres.Postgres
	Redis          *redis.Redis
	CacheRefresher *workers.CacheRefresher
	AlertSender    *workers.AlertSender
}

func InitComponents(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Components, error) {
	log.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	log.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg.Redis, log)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	spotCache := redis.NewSpotCache(redisClient)
	alertQueue := redis.NewAlertQueue(redisClient.Client, "alerts:critico")

	log.Info("Initializing media storage")
	mediaStorage, err := media.NewStorage(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to init media storage: %w", err)
	}

	nearbySvc := service.NewNearbyResolver(storage.Spots(), spotCache, log, cfg.Nearby)
	submissionSvc := service.NewSubmissionService(storage.Reports(), auth.Identity{}, alertQueue, log)
	readerSvc := service.NewSpotReader(storage.Spots(), storage.Reports())
	adminSvc := service.NewAdminSpotService(storage.Spots(), spotCache, log, cfg.Nearby.CacheTTL)
	statsSvc := service.NewStatsService(storage.Stats())

	svc := service.NewService(nearbySvc, submissionSvc, readerSvc, adminSvc, statsSvc)

	httpServer := api.NewServer(cfg, log, svc, mediaStorage)

	refresher := workers.NewCacheRefresher(storage.Spots(), spotCache, log, cfg.Nearby.CacheRefresh, cfg.Nearby.CacheTTL)
	sender := workers.NewAlertSender(log, cfg.Webhook, alertQueue)

	log.Info("Components initialized")

	return &Components{
		logger:         log,
		HttpServer:     httpServer,
		Postgres:       storage,
		Redis:          redisClient,
		CacheRefresher: refresher,
		AlertSender:    sender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
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
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
