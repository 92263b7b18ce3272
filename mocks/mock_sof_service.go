package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sofdesk/internal/domain"
	"sofdesk/internal/service"
	"sofdesk/internal/sof"
)

// MockSOFService is a mock implementation of service.SOFService.
type MockSOFService struct {
	mock.Mock
}

func (m *MockSOFService) ParseUpload(ctx context.Context, input service.SOFUploadInput) (*service.SOFParseOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SOFParseOutput), args.Error(1)
}

func (m *MockSOFService) ParseText(ctx context.Context, fileName, text string) (*service.SOFParseOutput, error) {
	args := m.Called(ctx, fileName, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SOFParseOutput), args.Error(1)
}

func (m *MockSOFService) GetByID(ctx context.Context, id uuid.UUID) (*domain.SOFRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SOFRecord), args.Error(1)
}

func (m *MockSOFService) List(ctx context.Context, offset, limit int) ([]domain.SOFRecord, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.SOFRecord), args.Int(1), args.Error(2)
}

func (m *MockSOFService) ListByStatus(ctx context.Context, status string, offset, limit int) ([]domain.SOFRecord, int, error) {
	args := m.Called(ctx, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.SOFRecord), args.Int(1), args.Error(2)
}

func (m *MockSOFService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSOFService) Scenario(laytimeHours, noticePeriodHours, workingHoursPerDay float64) sof.Scenario {
	args := m.Called(laytimeHours, noticePeriodHours, workingHoursPerDay)
	return args.Get(0).(sof.Scenario)
}
