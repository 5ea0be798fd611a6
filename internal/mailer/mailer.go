package mailer

import (
	"context"

	"pitchmaker-backend/internal/shared/telemetry"
)

// Mailer delivers transactional mail. The default implementation only logs,
// which is what local dev wants for magic links.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer writes outbound mail to the log instead of delivering it.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	telemetry.Info("outbound mail", map[string]any{
		"to":      to,
		"subject": subject,
		"body":    body,
	})
	return nil
}
