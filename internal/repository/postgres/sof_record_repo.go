package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"sofdesk/internal/domain"
	"sofdesk/internal/port"
)

type sofRecordRepo struct {
	db *sqlx.DB
}

// NewSOFRecordRepo creates a new PostgreSQL-backed SOFRecordRepository.
func NewSOFRecordRepo(db *sqlx.DB) port.SOFRecordRepository {
	return &sofRecordRepo{db: db}
}

func (r *sofRecordRepo) Create(ctx context.Context, rec *domain.SOFRecord) error {
	query := `INSERT INTO sof_records
		(id, file_id, file_name, result, laytime_status, total_time_hours,
		 demurrage_usd, despatch_usd, confidence_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.FileID, rec.FileName, rec.Result, rec.LaytimeStatus,
		rec.TotalTimeHours, rec.DemurrageUSD, rec.DespatchUSD,
		rec.ConfidenceScore, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("sofRecordRepo.Create: %w", err)
	}
	return nil
}

func (r *sofRecordRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SOFRecord, error) {
	var rec domain.SOFRecord
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM sof_records WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("sofRecordRepo.GetByID: %w", err)
	}
	return &rec, nil
}

func (r *sofRecordRepo) List(ctx context.Context, offset, limit int) ([]domain.SOFRecord, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM sof_records"); err != nil {
		return nil, 0, fmt.Errorf("sofRecordRepo.List count: %w", err)
	}

	var recs []domain.SOFRecord
	err := r.db.SelectContext(ctx, &recs,
		"SELECT * FROM sof_records ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("sofRecordRepo.List: %w", err)
	}
	return recs, total, nil
}

func (r *sofRecordRepo) ListByStatus(ctx context.Context, status string, offset, limit int) ([]domain.SOFRecord, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM sof_records WHERE laytime_status = $1", status)
	if err != nil {
		return nil, 0, fmt.Errorf("sofRecordRepo.ListByStatus count: %w", err)
	}

	var recs []domain.SOFRecord
	err = r.db.SelectContext(ctx, &recs,
		`SELECT * FROM sof_records WHERE laytime_status = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("sofRecordRepo.ListByStatus: %w", err)
	}
	return recs, total, nil
}

func (r *sofRecordRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM sof_records WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("sofRecordRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
