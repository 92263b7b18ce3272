package service

import (
	"context"

	"sofdesk/internal/domain"
	"sofdesk/internal/port"
)

// StatsService exposes desk-wide aggregate statistics.
type StatsService interface {
	GetSystemStats(ctx context.Context) (*domain.SystemStats, error)
}

type statsService struct {
	statsRepo port.StatsRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(statsRepo port.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetSystemStats(ctx context.Context) (*domain.SystemStats, error) {
	return s.statsRepo.GetSystemStats(ctx)
}
