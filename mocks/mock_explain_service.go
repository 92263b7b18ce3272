package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sofdesk/internal/sof"
)

// MockExplainService is a mock implementation of service.ExplainService.
type MockExplainService struct {
	mock.Mock
}

func (m *MockExplainService) Explain(ctx context.Context, result sof.ParseResult) (string, error) {
	args := m.Called(ctx, result)
	return args.String(0), args.Error(1)
}
