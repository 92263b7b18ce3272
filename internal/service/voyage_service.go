package service

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"sofdesk/internal/domain"
	"sofdesk/internal/port"
)

// VoyageCreateInput is the DTO for voyage creation.
type VoyageCreateInput struct {
	VesselName       string `json:"vessel_name" binding:"required"`
	VoyageNumber     string `json:"voyage_number" binding:"required"`
	LoadPort         string `json:"load_port"`
	DischargePort    string `json:"discharge_port"`
	CargoDescription string `json:"cargo_description"`
	Notes            string `json:"notes"`
}

// VoyageService defines the voyage tracking contract.
type VoyageService interface {
	Create(ctx context.Context, input VoyageCreateInput) (*domain.Voyage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Voyage, error)
	List(ctx context.Context, offset, limit int) ([]domain.Voyage, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.VoyageStatus) error
}

type voyageService struct {
	voyageRepo port.VoyageRepository
}

// NewVoyageService creates a new VoyageService implementation.
func NewVoyageService(voyageRepo port.VoyageRepository) VoyageService {
	return &voyageService{voyageRepo: voyageRepo}
}

func (s *voyageService) Create(ctx context.Context, input VoyageCreateInput) (*domain.Voyage, error) {
	if strings.TrimSpace(input.VesselName) == "" || strings.TrimSpace(input.VoyageNumber) == "" {
		return nil, domain.ErrInvalidInput
	}

	voyage := &domain.Voyage{
		ID:               uuid.New(),
		VesselName:       strings.TrimSpace(input.VesselName),
		VoyageNumber:     strings.TrimSpace(input.VoyageNumber),
		LoadPort:         input.LoadPort,
		DischargePort:    input.DischargePort,
		CargoDescription: input.CargoDescription,
		Status:           domain.VoyageStatusPlanned,
		Notes:            input.Notes,
	}
	if err := s.voyageRepo.Create(ctx, voyage); err != nil {
		return nil, err
	}

	log.Printf("voyageService.Create: created voyage %s (%s / %s)",
		voyage.ID, voyage.VesselName, voyage.VoyageNumber)
	return voyage, nil
}

func (s *voyageService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Voyage, error) {
	return s.voyageRepo.GetByID(ctx, id)
}

func (s *voyageService) List(ctx context.Context, offset, limit int) ([]domain.Voyage, int, error) {
	return s.voyageRepo.List(ctx, offset, limit)
}

func (s *voyageService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.VoyageStatus) error {
	switch status {
	case domain.VoyageStatusPlanned, domain.VoyageStatusActive, domain.VoyageStatusCompleted:
	default:
		return domain.ErrInvalidInput
	}
	return s.voyageRepo.UpdateStatus(ctx, id, status)
}
