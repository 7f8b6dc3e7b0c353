package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vietts/insicuri/internal/domain"
	"github.com/vietts/insicuri/internal/geo"
	"github.com/vietts/insicuri/internal/scoring"
	"github.com/vietts/insicuri/pkg/e"
	"github.com/vietts/insicuri/pkg/validator"
)

type submissionService struct {
	reports  ReportRepository
	identity Identity
	alerts   AlertQueue
	logger   *slog.Logger
}

func NewSubmissionService(reports ReportRepository, identity Identity, alerts AlertQueue, logger *slog.Logger) SubmissionService {
	return &submissionService{
		reports:  reports,
		identity: identity,
		alerts:   alerts,
		logger:   logger,
	}
}

// CreateSpotWithReport is the new-spot path: the spot and its first
// report are persisted atomically, with the danger score computed from
// that single report. Nothing is written when validation fails.
func (s *submissionService) CreateSpotWithReport(ctx context.Context, req domain.CreateSpotRequest) (uuid.UUID, error) {
	const op = "service.CreateSpotWithReport"

	userID, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, e.ErrUnauthenticated)
	}

	if !(geo.Point{Lat: req.Lat, Lng: req.Lng}).Valid() {
		return uuid.Nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if err := validator.ValidateStruct(&req); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}

	score, err := scoring.Compute([]int{req.Severity})
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	spot := &domain.Spot{
		ID:           uuid.New(),
		Lat:          req.Lat,
		Lng:          req.Lng,
		Title:        req.Title,
		Address:      req.Address,
		ReportsCount: 1,
		DangerScore:  score,
		LastReportAt: now,
		Status:       domain.SpotActive,
		CreatedBy:    userID,
		CreatedAt:    now,
	}
	report := &domain.Report{
		ID:          uuid.New(),
		SpotID:      spot.ID,
		UserID:      userID,
		Category:    req.Category,
		Severity:    req.Severity,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
		CreatedAt:   now,
	}

	if err := s.reports.CreateSpotWithReport(ctx, spot, report); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("spot created",
		slog.String("spot_id", spot.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("category", string(req.Category)),
		slog.Int("severity", req.Severity),
		slog.Float64("danger_score", score),
	)

	return spot.ID, nil
}

// AddReportToSpot is the merge path. The aggregate recompute happens in
// the repository transaction; here we only validate, attach identity,
// and raise a Critico alert when the score crosses the band upward.
func (s *submissionService) AddReportToSpot(ctx context.Context, spotID uuid.UUID, req domain.AddReportRequest) error {
	const op = "service.AddReportToSpot"

	userID, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, e.ErrUnauthenticated)
	}

	if spotID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if err := validator.ValidateStruct(&req); err != nil {
		return fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}

	report := &domain.Report{
		ID:          uuid.New(),
		SpotID:      spotID,
		UserID:      userID,
		Category:    req.Category,
		Severity:    req.Severity,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
		CreatedAt:   time.Now().UTC(),
	}

	spot, prevScore, err := s.reports.AddReport(ctx, report)
	if err != nil {
		return err
	}

	s.logger.Info("report attached",
		slog.String("spot_id", spotID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("reports_count", spot.ReportsCount),
		slog.Float64("danger_score", spot.DangerScore),
	)

	if prevScore < scoring.ThresholdCritico && spot.DangerScore >= scoring.ThresholdCritico {
		payload := domain.AlertPayload{
			SpotID:       spot.ID,
			Title:        spot.Title,
			Lat:          spot.Lat,
			Lng:          spot.Lng,
			DangerScore:  spot.DangerScore,
			ReportsCount: spot.ReportsCount,
			TriggeredAt:  time.Now().UTC(),
		}
		if err := s.alerts.Enqueue(ctx, payload); err != nil {
			// the submission already committed; alerting is best effort
			s.logger.Error("enqueue critico alert failed",
				slog.String("spot_id", spot.ID.String()),
				slog.Any("error", err),
			)
		} else {
			s.logger.Info("critico alert enqueued",
				slog.String("spot_id", spot.ID.String()),
				slog.Float64("danger_score", spot.DangerScore),
			)
		}
	}

	return nil
}
