package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sofdesk/internal/domain"
)

// MockSOFRecordRepo is a mock implementation of port.SOFRecordRepository.
type MockSOFRecordRepo struct {
	mock.Mock
}

func (m *MockSOFRecordRepo) Create(ctx context.Context, rec *domain.SOFRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockSOFRecordRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SOFRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SOFRecord), args.Error(1)
}

func (m *MockSOFRecordRepo) List(ctx context.Context, offset, limit int) ([]domain.SOFRecord, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.SOFRecord), args.Int(1), args.Error(2)
}

func (m *MockSOFRecordRepo) ListByStatus(ctx context.Context, status string, offset, limit int) ([]domain.SOFRecord, int, error) {
	args := m.Called(ctx, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.SOFRecord), args.Int(1), args.Error(2)
}

func (m *MockSOFRecordRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
