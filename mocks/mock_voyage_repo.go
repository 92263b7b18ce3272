package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sofdesk/internal/domain"
)

// MockVoyageRepo is a mock implementation of port.VoyageRepository.
type MockVoyageRepo struct {
	mock.Mock
}

func (m *MockVoyageRepo) Create(ctx context.Context, voyage *domain.Voyage) error {
	args := m.Called(ctx, voyage)
	return args.Error(0)
}

func (m *MockVoyageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Voyage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voyage), args.Error(1)
}

func (m *MockVoyageRepo) List(ctx context.Context, offset, limit int) ([]domain.Voyage, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Voyage), args.Int(1), args.Error(2)
}

func (m *MockVoyageRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.VoyageStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
