package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vietts/insicuri/internal/domain"
)

type adminSpotService struct {
	spots    SpotRepository
	cache    SpotCacheService
	logger   *slog.Logger
	cacheTTL time.Duration
}

func NewAdminSpotService(spots SpotRepository, cache SpotCacheService, logger *slog.Logger, cacheTTL time.Duration) AdminSpotService {
	return &adminSpotService{spots: spots, cache: cache, logger: logger, cacheTTL: cacheTTL}
}

func (s *adminSpotService) List(ctx context.Context, page, limit int) ([]*domain.Spot, int64, error) {
	return s.spots.List(ctx, page, limit)
}

func (s *adminSpotService) Get(ctx context.Context, id uuid.UUID) (*domain.Spot, error) {
	return s.spots.Get(ctx, id)
}

func (s *adminSpotService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SpotStatus) error {
	if err := s.spots.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.refreshCache(ctx)
	return nil
}

// Remove soft-removes: the spot stops surfacing as a merge target but
// its reports stay on record.
func (s *adminSpotService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.spots.UpdateStatus(ctx, id, domain.SpotRemoved); err != nil {
		return err
	}
	s.refreshCache(ctx)
	return nil
}

func (s *adminSpotService) refreshCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	active, err := s.spots.ListActive(ctx)
	if err != nil {
		s.logger.Error("cache refresh after moderation failed", slog.Any("error", err))
		return
	}
	if err := s.cache.SetActive(ctx, active, s.cacheTTL); err != nil {
		s.logger.Error("cache write after moderation failed", slog.Any("error", err))
	}
}
