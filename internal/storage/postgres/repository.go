package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/vietts/insicuri/internal/domain"
)

type SpotRepository interface {
	FindNearby(ctx context.Context, lat, lng, radiusM float64, limit int) ([]domain.NearbyCandidate, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Spot, error)
	ListBBox(ctx context.Context, box domain.BBox, limit int) ([]*domain.Spot, error)
	List(ctx context.Context, page, limit int) ([]*domain.Spot, int64, error)
	ListActive(ctx context.Context) ([]domain.CachedSpot, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SpotStatus) error
}

type ReportRepository interface {
	// CreateSpotWithReport persists the spot and its first report in one
	// transaction: both rows land or neither does.
	CreateSpotWithReport(ctx context.Context, spot *domain.Spot, report *domain.Report) error
	// AddReport inserts the report and recomputes the owning spot's
	// aggregates under a row lock. Returns the updated spot and the
	// score it had before this report.
	AddReport(ctx context.Context, report *domain.Report) (*domain.Spot, float64, error)
	ListBySpot(ctx context.Context, spotID uuid.UUID) ([]*domain.Report, error)
}

type StatsRepository interface {
	CountUniqueReporters(ctx context.Context, minutes int) (int64, error)
	CountReports(ctx context.Context, minutes int) (int64, error)
}
