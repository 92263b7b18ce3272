package noop

import (
	"context"
	"log"

	"sofdesk/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op AlertSender that logs alerts to stdout.
func NewNoopSender() port.AlertSender {
	return &noopSender{}
}

func (s *noopSender) SendAlert(_ context.Context, alert port.Alert) error {
	log.Printf("[NOOP ALERT] %s: %s", alert.Subject, alert.Body)
	return nil
}
