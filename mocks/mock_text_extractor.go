package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sofdesk/internal/domain"
)

// MockTextExtractor is a mock implementation of port.TextExtractor.
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) ExtractText(ctx context.Context, fileBytes []byte, fileType domain.FileType) (string, error) {
	args := m.Called(ctx, fileBytes, fileType)
	return args.String(0), args.Error(1)
}
