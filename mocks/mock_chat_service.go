package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sofdesk/internal/domain"
)

// MockChatService is a mock implementation of service.ChatService.
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Ask(ctx context.Context, sessionID, message string) (*domain.ChatMessage, error) {
	args := m.Called(ctx, sessionID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatMessage), args.Error(1)
}

func (m *MockChatService) History(ctx context.Context, sessionID string, offset, limit int) ([]domain.ChatMessage, int, error) {
	args := m.Called(ctx, sessionID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ChatMessage), args.Int(1), args.Error(2)
}
