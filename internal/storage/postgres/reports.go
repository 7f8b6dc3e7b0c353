package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vietts/insicuri/internal/domain"
	"github.com/vietts/insicuri/internal/scoring"
	"github.com/vietts/insicuri/pkg/e"
)

type ReportStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportStore(pool *pgxpool.Pool, logger *slog.Logger) *ReportStore {
	return &ReportStore{pool: pool, logger: logger}
}

const insertReport = `
INSERT INTO reports (id, spot_id, user_id, category, severity, description, photo_url, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func (r *ReportStore) CreateSpotWithReport(ctx context.Context, spot *domain.Spot, report *domain.Report) error {
	const op = "postgres.Report.CreateSpotWithReport"

	if spot == nil || report == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	const insertSpot = `
INSERT INTO spots (id, geo_point, title, address, reports_count, danger_score, last_report_at, status, created_by, created_at)
VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography, $4, $5, $6, $7, $8, $9, $10, $11)
`

	_, err = tx.Exec(ctx, insertSpot,
		spot.ID,
		spot.Lng,
		spot.Lat,
		spot.Title,
		spot.Address,
		spot.ReportsCount,
		spot.DangerScore,
		spot.LastReportAt,
		spot.Status,
		spot.CreatedBy,
		spot.CreatedAt,
	)
	if err != nil {
		r.logger.Error("insert spot failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	_, err = tx.Exec(ctx, insertReport,
		report.ID,
		report.SpotID,
		report.UserID,
		report.Category,
		report.Severity,
		report.Description,
		report.PhotoURL,
		report.CreatedAt,
	)
	if err != nil {
		r.logger.Error("insert report failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// AddReport is the merge path. The spot row is locked for the whole
// transaction, so concurrent submissions to the same spot serialize
// their aggregate recompute and no increment is ever lost.
func (r *ReportStore) AddReport(ctx context.Context, report *domain.Report) (*domain.Spot, float64, error) {
	const op = "postgres.Report.AddReport"

	if report == nil || report.SpotID == uuid.Nil {
		return nil, 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	lockQuery := `SELECT ` + spotColumns + ` FROM spots WHERE id = $1 FOR UPDATE`

	spot, err := scanSpot(tx.QueryRow(ctx, lockQuery, report.SpotID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("lock spot failed", slog.String("op", op), slog.Any("error", err), slog.String("spot_id", report.SpotID.String()))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	if spot.Status == domain.SpotRemoved {
		return nil, 0, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	prevScore := spot.DangerScore

	_, err = tx.Exec(ctx, insertReport,
		report.ID,
		report.SpotID,
		report.UserID,
		report.Category,
		report.Severity,
		report.Description,
		report.PhotoURL,
		report.CreatedAt,
	)
	if err != nil {
		r.logger.Error("insert report failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	rows, err := tx.Query(ctx, `SELECT severity FROM reports WHERE spot_id = $1`, report.SpotID)
	if err != nil {
		r.logger.Error("select severities failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	severities := make([]int, 0, spot.ReportsCount+1)
	for rows.Next() {
		var sev int
		if err := rows.Scan(&sev); err != nil {
			rows.Close()
			return nil, 0, e.WrapError(ctx, op, err)
		}
		severities = append(severities, sev)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, 0, e.WrapError(ctx, op, err)
	}

	score, err := scoring.Compute(severities)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var lastReportAt time.Time
	err = tx.QueryRow(ctx, `SELECT MAX(created_at) FROM reports WHERE spot_id = $1`, report.SpotID).Scan(&lastReportAt)
	if err != nil {
		return nil, 0, e.WrapError(ctx, op, err)
	}

	const update = `
UPDATE spots
SET reports_count = $2,
    danger_score  = $3,
    last_report_at = $4
WHERE id = $1
`
	if _, err := tx.Exec(ctx, update, spot.ID, len(severities), score, lastReportAt); err != nil {
		r.logger.Error("update aggregates failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	spot.ReportsCount = len(severities)
	spot.DangerScore = score
	spot.LastReportAt = lastReportAt

	return spot, prevScore, nil
}

func (r *ReportStore) ListBySpot(ctx context.Context, spotID uuid.UUID) ([]*domain.Report, error) {
	const op = "postgres.Report.ListBySpot"

	const query = `
SELECT id, spot_id, user_id, category, severity, description, photo_url, created_at
FROM reports
WHERE spot_id = $1
ORDER BY created_at DESC
`

	rows, err := r.pool.Query(ctx, query, spotID)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var reports []*domain.Report
	for rows.Next() {
		var rep domain.Report
		if err := rows.Scan(
			&rep.ID,
			&rep.SpotID,
			&rep.UserID,
			&rep.Category,
			&rep.Severity,
			&rep.Description,
			&rep.PhotoURL,
			&rep.CreatedAt,
		); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		reports = append(reports, &rep)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return reports, nil
}
