package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/vietts/insicuri/internal/domain"
)

type SpotSource interface {
	ListActive(ctx context.Context) ([]domain.CachedSpot, error)
}

type SpotCache interface {
	SetActive(ctx context.Context, spots []domain.CachedSpot, ttl time.Duration) error
}

// CacheRefresher keeps the active-spot cache warm so the resolver's
// fallback path has recent data when the primary query is down.
type CacheRefresher struct {
	source   SpotSource
	cache    SpotCache
	logger   *slog.Logger
	interval time.Duration
	ttl      time.Duration
}

func NewCacheRefresher(source SpotSource, cache SpotCache, logger *slog.Logger, interval, ttl time.Duration) *CacheRefresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &CacheRefresher{
		source:   source,
		cache:    cache,
		logger:   logger,
		interval: interval,
		ttl:      ttl,
	}
}

func (w *CacheRefresher) Run(ctx context.Context) {
	w.logger.Info("cache refresher started", slog.Duration("interval", w.interval))

	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("cache refresher stopped", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *CacheRefresher) refresh(ctx context.Context) {
	spots, err := w.source.ListActive(ctx)
	if err != nil {
		w.logger.Error("ListActive failed", slog.Any("error", err))
		return
	}
	if err := w.cache.SetActive(ctx, spots, w.ttl); err != nil {
		w.logger.Error("SetActive failed", slog.Any("error", err))
		return
	}
	w.logger.Debug("spot cache refreshed", slog.Int("spots", len(spots)))
}
