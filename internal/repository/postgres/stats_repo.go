package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"sofdesk/internal/domain"
	"sofdesk/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

const systemStatsQuery = `SELECT
	(SELECT COUNT(*) FROM sof_records) AS sof_records,
	(SELECT COUNT(*) FROM file_metadata WHERE status != 'deleted') AS files_stored,
	(SELECT COUNT(*) FROM voyages) AS voyages,
	(SELECT COUNT(*) FROM chat_messages) AS chat_messages,
	(SELECT COUNT(*) FROM sof_records WHERE laytime_status = 'exceeded') AS laytime_exceeded`

func (r *statsRepo) GetSystemStats(ctx context.Context) (*domain.SystemStats, error) {
	var stats domain.SystemStats
	if err := r.db.GetContext(ctx, &stats, systemStatsQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.GetSystemStats: %w", err)
	}
	return &stats, nil
}
