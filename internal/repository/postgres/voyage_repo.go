package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"sofdesk/internal/domain"
	"sofdesk/internal/port"
)

type voyageRepo struct {
	db *sqlx.DB
}

// NewVoyageRepo creates a new PostgreSQL-backed VoyageRepository.
func NewVoyageRepo(db *sqlx.DB) port.VoyageRepository {
	return &voyageRepo{db: db}
}

func (r *voyageRepo) Create(ctx context.Context, voyage *domain.Voyage) error {
	now := time.Now().UTC()
	voyage.CreatedAt = now
	voyage.UpdatedAt = now

	query := `INSERT INTO voyages
		(id, vessel_name, voyage_number, load_port, discharge_port,
		 cargo_description, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		voyage.ID, voyage.VesselName, voyage.VoyageNumber, voyage.LoadPort,
		voyage.DischargePort, voyage.CargoDescription, voyage.Status,
		voyage.Notes, voyage.CreatedAt, voyage.UpdatedAt)
	if err != nil {
		return fmt.Errorf("voyageRepo.Create: %w", err)
	}
	return nil
}

func (r *voyageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Voyage, error) {
	var voyage domain.Voyage
	err := r.db.GetContext(ctx, &voyage, "SELECT * FROM voyages WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("voyageRepo.GetByID: %w", err)
	}
	return &voyage, nil
}

func (r *voyageRepo) List(ctx context.Context, offset, limit int) ([]domain.Voyage, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM voyages"); err != nil {
		return nil, 0, fmt.Errorf("voyageRepo.List count: %w", err)
	}

	var voyages []domain.Voyage
	err := r.db.SelectContext(ctx, &voyages,
		"SELECT * FROM voyages ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("voyageRepo.List: %w", err)
	}
	return voyages, total, nil
}

func (r *voyageRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.VoyageStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE voyages SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("voyageRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
