package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vietts/insicuri/internal/domain"
	"github.com/vietts/insicuri/pkg/e"
)

type SpotStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSpotStore(pool *pgxpool.Pool, logger *slog.Logger) *SpotStore {
	return &SpotStore{pool: pool, logger: logger}
}

// FindNearby runs the two-phase nearby query: ST_DWithin rides the
// geography index as the coarse filter and ST_Distance supplies the
// exact meters for ordering. Removed spots never surface as merge
// targets.
func (s *SpotStore) FindNearby(ctx context.Context, lat, lng, radiusM float64, limit int) ([]domain.NearbyCandidate, error) {
	const op = "postgres.Spot.FindNearby"

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 || radiusM < 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if limit <= 0 {
		limit = 1
	}

	const query = `
SELECT id,
       ST_Y(geo_point::geometry) AS lat,
       ST_X(geo_point::geometry) AS lng,
       title,
       danger_score,
       reports_count,
       last_report_at,
       ST_Distance(geo_point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) AS distance_m
FROM spots
WHERE status <> 'removed'
  AND ST_DWithin(geo_point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
ORDER BY distance_m ASC, last_report_at DESC
LIMIT $4
`

	rows, err := s.pool.Query(ctx, query, lng, lat, radiusM, limit)
	if err != nil {
		s.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	candidates := make([]domain.NearbyCandidate, 0, limit)
	for rows.Next() {
		var c domain.NearbyCandidate
		if err := rows.Scan(
			&c.ID,
			&c.Lat,
			&c.Lng,
			&c.Title,
			&c.DangerScore,
			&c.ReportsCount,
			&c.LastReportAt,
			&c.DistanceM,
		); err != nil {
			s.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		s.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return candidates, nil
}

const spotColumns = `
	id,
	ST_Y(geo_point::geometry) AS lat,
	ST_X(geo_point::geometry) AS lng,
	title,
	address,
	reports_count,
	danger_score,
	last_report_at,
	status,
	created_by,
	created_at
`

func scanSpot(row pgx.Row) (*domain.Spot, error) {
	var sp domain.Spot
	err := row.Scan(
		&sp.ID,
		&sp.Lat,
		&sp.Lng,
		&sp.Title,
		&sp.Address,
		&sp.ReportsCount,
		&sp.DangerScore,
		&sp.LastReportAt,
		&sp.Status,
		&sp.CreatedBy,
		&sp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

func (s *SpotStore) Get(ctx context.Context, id uuid.UUID) (*domain.Spot, error) {
	const op = "postgres.Spot.Get"

	query := `SELECT ` + spotColumns + ` FROM spots WHERE id = $1`

	sp, err := scanSpot(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		s.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return sp, nil
}

func (s *SpotStore) ListBBox(ctx context.Context, box domain.BBox, limit int) ([]*domain.Spot, error) {
	const op = "postgres.Spot.ListBBox"

	if limit <= 0 || limit > 500 {
		limit = 500
	}

	query := `
SELECT ` + spotColumns + `
FROM spots
WHERE status <> 'removed'
  AND ST_Intersects(geo_point, ST_MakeEnvelope($1, $2, $3, $4, 4326)::geography)
ORDER BY last_report_at DESC
LIMIT $5
`

	rows, err := s.pool.Query(ctx, query, box.MinLng, box.MinLat, box.MaxLng, box.MaxLat, limit)
	if err != nil {
		s.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var spots []*domain.Spot
	for rows.Next() {
		sp, err := scanSpot(rows)
		if err != nil {
			s.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		spots = append(spots, sp)
	}
	if err := rows.Err(); err != nil {
		s.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return spots, nil
}

func (s *SpotStore) List(ctx context.Context, page, limit int) ([]*domain.Spot, int64, error) {
	const op = "postgres.Spot.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM spots`).Scan(&total); err != nil {
		s.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	query := `
SELECT ` + spotColumns + `
FROM spots
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

	rows, err := s.pool.Query(ctx, query, limit, offset)
	if err != nil {
		s.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var spots []*domain.Spot
	for rows.Next() {
		sp, err := scanSpot(rows)
		if err != nil {
			s.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		spots = append(spots, sp)
	}
	if err := rows.Err(); err != nil {
		s.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return spots, total, nil
}

func (s *SpotStore) ListActive(ctx context.Context) ([]domain.CachedSpot, error) {
	const op = "postgres.Spot.ListActive"

	const query = `
SELECT id,
       ST_Y(geo_point::geometry) AS lat,
       ST_X(geo_point::geometry) AS lng,
       title,
       danger_score,
       reports_count,
       last_report_at
FROM spots
WHERE status <> 'removed'
`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		s.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var spots []domain.CachedSpot
	for rows.Next() {
		var sp domain.CachedSpot
		if err := rows.Scan(
			&sp.ID,
			&sp.Lat,
			&sp.Lng,
			&sp.Title,
			&sp.DangerScore,
			&sp.ReportsCount,
			&sp.LastReportAt,
		); err != nil {
			s.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		spots = append(spots, sp)
	}
	if err := rows.Err(); err != nil {
		s.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return spots, nil
}

func (s *SpotStore) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SpotStatus) error {
	const op = "postgres.Spot.UpdateStatus"

	if !status.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	cmd, err := s.pool.Exec(ctx, `UPDATE spots SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		s.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}
