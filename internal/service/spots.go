package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vietts/insicuri/internal/domain"
	"github.com/vietts/insicuri/pkg/e"
)

type spotReader struct {
	spots   SpotRepository
	reports ReportRepository
}

func NewSpotReader(spots SpotRepository, reports ReportRepository) SpotReader {
	return &spotReader{spots: spots, reports: reports}
}

func (s *spotReader) GetSpot(ctx context.Context, id uuid.UUID) (*domain.Spot, []*domain.Report, error) {
	spot, err := s.spots.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if spot.Status == domain.SpotRemoved {
		return nil, nil, fmt.Errorf("service.GetSpot: %w", e.ErrNotFound)
	}

	reports, err := s.reports.ListBySpot(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return spot, reports, nil
}

func (s *spotReader) ListInBBox(ctx context.Context, box domain.BBox, limit int) ([]*domain.Spot, error) {
	if box.MinLat > box.MaxLat || box.MinLng > box.MaxLng {
		return nil, fmt.Errorf("service.ListInBBox: %w", e.ErrInvalidInput)
	}
	return s.spots.ListBBox(ctx, box, limit)
}
