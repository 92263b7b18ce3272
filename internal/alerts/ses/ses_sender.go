package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"sofdesk/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	toAddress   string
}

// NewSESSender creates a new SES-backed AlertSender. Alerts go to the
// operations mailbox configured for the desk.
func NewSESSender(region, fromAddress, toAddress string) (port.AlertSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		toAddress:   toAddress,
	}, nil
}

func (s *sesSender) SendAlert(ctx context.Context, alert port.Alert) error {
	from := fmt.Sprintf("SOFDESK Alerts <%s>", s.fromAddress)
	subject := alert.Subject
	textBody := alert.Body
	htmlBody := buildAlertHTML(alert)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{s.toAddress},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildAlertHTML(alert port.Alert) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">%s</h2>
  <p style="white-space: pre-line;">%s</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">SOFDESK - Laytime Operations</p>
</body>
</html>`, alert.Subject, alert.Body)
}
