package port

import "context"

// Alert is one operational notification for the chartering desk.
type Alert struct {
	Subject string
	Body    string
}

// AlertSender delivers alerts to the configured channel.
type AlertSender interface {
	SendAlert(ctx context.Context, alert Alert) error
}
