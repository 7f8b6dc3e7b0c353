package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vietts/insicuri/internal/config"
	"github.com/vietts/insicuri/internal/domain"
	"github.com/vietts/insicuri/internal/geo"
	"github.com/vietts/insicuri/pkg/e"
)

type nearbyResolver struct {
	spots  SpotRepository
	cache  SpotCacheService
	logger *slog.Logger
	cfg    config.NearbyConfig
}

func NewNearbyResolver(spots SpotRepository, cache SpotCacheService, logger *slog.Logger, cfg config.NearbyConfig) NearbyResolver {
	if cfg.RadiusM <= 0 {
		cfg.RadiusM = 50
	}
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = 5
	}
	return &nearbyResolver{
		spots:  spots,
		cache:  cache,
		logger: logger,
		cfg:    cfg,
	}
}

// FindNearby returns merge candidates for a dropped pin, ascending by
// distance. An empty result means "create a new spot". The primary
// PostGIS query is authoritative; if it fails, the cached active spots
// plus the in-memory index answer best-effort, and if that fails too
// the resolver degrades to no matches rather than blocking submission.
func (s *nearbyResolver) FindNearby(ctx context.Context, req domain.NearbyRequest) ([]domain.NearbyCandidate, error) {
	point := geo.Point{Lat: req.Lat, Lng: req.Lng}
	if !point.Valid() {
		return nil, fmt.Errorf("service.FindNearby: %w", e.ErrInvalidCoordinates)
	}

	radius := s.cfg.RadiusM
	if req.RadiusM != nil {
		if *req.RadiusM < 0 {
			return nil, fmt.Errorf("service.FindNearby: %w", e.ErrInvalidInput)
		}
		radius = *req.RadiusM
	}

	candidates, err := s.spots.FindNearby(ctx, req.Lat, req.Lng, radius, s.cfg.MaxCandidates)
	if err == nil {
		s.logger.Debug("nearby resolved",
			slog.Float64("lat", req.Lat),
			slog.Float64("lng", req.Lng),
			slog.Float64("radius_m", radius),
			slog.Int("candidates", len(candidates)),
		)
		return candidates, nil
	}

	s.logger.Warn("nearby query failed, falling back to cache",
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
		slog.Any("error", err),
	)

	cached, cacheErr := s.cache.GetActive(ctx)
	if cacheErr != nil || len(cached) == 0 {
		if cacheErr != nil {
			s.logger.Error("cache.GetActive failed", slog.Any("error", cacheErr))
		}
		// degrade to "no nearby matches": the caller creates a new spot
		return []domain.NearbyCandidate{}, nil
	}

	nearby, idxErr := geo.NewIndex(cached).Within(point, radius)
	if idxErr != nil {
		s.logger.Error("cache index lookup failed", slog.Any("error", idxErr))
		return []domain.NearbyCandidate{}, nil
	}
	if len(nearby) > s.cfg.MaxCandidates {
		nearby = nearby[:s.cfg.MaxCandidates]
	}

	s.logger.Info("nearby resolved from cache fallback",
		slog.Int("cached_spots", len(cached)),
		slog.Int("candidates", len(nearby)),
	)
	return nearby, nil
}
