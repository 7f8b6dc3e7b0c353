package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vietts/insicuri/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// Use-case surfaces consumed by the HTTP layer.

type NearbyResolver interface {
	FindNearby(ctx context.Context, req domain.NearbyRequest) ([]domain.NearbyCandidate, error)
}

type SubmissionService interface {
	CreateSpotWithReport(ctx context.Context, req domain.CreateSpotRequest) (uuid.UUID, error)
	AddReportToSpot(ctx context.Context, spotID uuid.UUID, req domain.AddReportRequest) error
}

type SpotReader interface {
	GetSpot(ctx context.Context, id uuid.UUID) (*domain.Spot, []*domain.Report, error)
	ListInBBox(ctx context.Context, box domain.BBox, limit int) ([]*domain.Spot, error)
}

type AdminSpotService interface {
	List(ctx context.Context, page, limit int) ([]*domain.Spot, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Spot, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SpotStatus) error
	Remove(ctx context.Context, id uuid.UUID) error
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.ReportingStats, error)
}

// Collaborators the services depend on.

type SpotRepository interface {
	FindNearby(ctx context.Context, lat, lng, radiusM float64, limit int) ([]domain.NearbyCandidate, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Spot, error)
	ListBBox(ctx context.Context, box domain.BBox, limit int) ([]*domain.Spot, error)
	List(ctx context.Context, page, limit int) ([]*domain.Spot, int64, error)
	ListActive(ctx context.Context) ([]domain.CachedSpot, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SpotStatus) error
}

type ReportRepository interface {
	CreateSpotWithReport(ctx context.Context, spot *domain.Spot, report *domain.Report) error
	AddReport(ctx context.Context, report *domain.Report) (*domain.Spot, float64, error)
	ListBySpot(ctx context.Context, spotID uuid.UUID) ([]*domain.Report, error)
}

type StatsRepository interface {
	CountUniqueReporters(ctx context.Context, minutes int) (int64, error)
	CountReports(ctx context.Context, minutes int) (int64, error)
}

type SpotCacheService interface {
	GetActive(ctx context.Context) ([]domain.CachedSpot, error)
	SetActive(ctx context.Context, spots []domain.CachedSpot, ttl time.Duration) error
}

type AlertQueue interface {
	Enqueue(ctx context.Context, payload domain.AlertPayload) error
}

// Identity is the external identity collaborator: the current
// authenticated user id, or ErrUnauthenticated.
type Identity interface {
	CurrentUser(ctx context.Context) (uuid.UUID, error)
}

type Service struct {
	Nearby      NearbyResolver
	Submissions SubmissionService
	Spots       SpotReader
	Admin       AdminSpotService
	Stats       StatsService
}

func NewService(
	nearby NearbyResolver,
	submissions SubmissionService,
	spots SpotReader,
	admin AdminSpotService,
	stats StatsService,
) *Service {
	return &Service{
		Nearby:      nearby,
		Submissions: submissions,
		Spots:       spots,
		Admin:       admin,
		Stats:       stats,
	}
}
