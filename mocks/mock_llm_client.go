package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sofdesk/internal/port"
)

// MockLLMClient is a mock implementation of port.LLMClient.
type MockLLMClient struct {
	mock.Mock
}

func (m *MockLLMClient) Complete(ctx context.Context, input port.CompletionInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockLLMClient) Name() string {
	args := m.Called()
	return args.String(0)
}
