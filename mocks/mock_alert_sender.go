package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sofdesk/internal/port"
)

// MockAlertSender is a mock implementation of port.AlertSender.
type MockAlertSender struct {
	mock.Mock
}

func (m *MockAlertSender) SendAlert(ctx context.Context, alert port.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}
