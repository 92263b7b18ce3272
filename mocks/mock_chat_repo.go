package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sofdesk/internal/domain"
)

// MockChatRepo is a mock implementation of port.ChatRepository.
type MockChatRepo struct {
	mock.Mock
}

func (m *MockChatRepo) Create(ctx context.Context, msg *domain.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockChatRepo) ListBySession(ctx context.Context, sessionID string, offset, limit int) ([]domain.ChatMessage, int, error) {
	args := m.Called(ctx, sessionID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ChatMessage), args.Int(1), args.Error(2)
}

func (m *MockChatRepo) ListRecent(ctx context.Context, offset, limit int) ([]domain.ChatMessage, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ChatMessage), args.Int(1), args.Error(2)
}
