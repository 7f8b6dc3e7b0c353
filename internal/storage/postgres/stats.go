package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vietts/insicuri/pkg/e"
)

type Stats struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStats(pool *pgxpool.Pool, logger *slog.Logger) *Stats {
	return &Stats{pool: pool, logger: logger}
}

func (s *Stats) CountUniqueReporters(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.Stats.CountUniqueReporters"

	const query = `
SELECT COUNT(DISTINCT user_id)
FROM reports
WHERE created_at >= now() - ($1 * interval '1 minute')
`

	var count int64
	if err := s.pool.QueryRow(ctx, query, minutes).Scan(&count); err != nil {
		s.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return count, nil
}

func (s *Stats) CountReports(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.Stats.CountReports"

	const query = `
SELECT COUNT(*)
FROM reports
WHERE created_at >= now() - ($1 * interval '1 minute')
`

	var count int64
	if err := s.pool.QueryRow(ctx, query, minutes).Scan(&count); err != nil {
		s.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return count, nil
}
