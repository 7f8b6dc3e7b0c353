package service

import (
	"context"

	"github.com/vietts/insicuri/internal/domain"
)

type statsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.ReportingStats, error) {
	minutes := req.Minutes
	if minutes == 0 {
		minutes = 60
	}

	unique, err := s.repo.CountUniqueReporters(ctx, minutes)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountReports(ctx, minutes)
	if err != nil {
		return nil, err
	}

	return &domain.ReportingStats{
		UniqueReporters: unique,
		TotalReports:    total,
		Minutes:         minutes,
	}, nil
}
