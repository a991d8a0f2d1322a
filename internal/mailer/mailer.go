package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	portssvc "github.com/dayboard/dayboard_backend/internal/core/ports/services"
	"github.com/dayboard/dayboard_backend/internal/platform/config"
)

// The pack has no mail library, so delivery goes through net/smtp directly;
// the message is a plain-text reset link and nothing more.

// SMTPMailer delivers password reset tokens over SMTP.
type SMTPMailer struct {
	addr            string
	from            string
	frontendBaseURL string
}

// NewSMTPMailer creates a mailer that sends through the configured SMTP
// relay.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		addr:            cfg.SMTPAddr,
		from:            cfg.SMTPFrom,
		frontendBaseURL: cfg.FrontendBaseURL,
	}
}

var _ portssvc.Mailer = (*SMTPMailer)(nil)

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, toEmail, resetToken string) error {
	body := fmt.Sprintf(
		"To: %s\r\nFrom: %s\r\nSubject: Reset your password\r\n\r\n"+
			"Use the link below to reset your password. It expires in 15 minutes.\r\n\r\n%s/reset-password/%s\r\n",
		toEmail, m.from, m.frontendBaseURL, resetToken,
	)
	if err := smtp.SendMail(m.addr, nil, m.from, []string{toEmail}, []byte(body)); err != nil {
		return fmt.Errorf("failed to send reset mail: %w", err)
	}
	return nil
}

// LogMailer is the development fallback used when no SMTP relay is
// configured: it logs the reset token instead of delivering it.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a log-only mailer.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

var _ portssvc.Mailer = (*LogMailer)(nil)

func (m *LogMailer) SendPasswordReset(ctx context.Context, toEmail, resetToken string) error {
	m.logger.Info("Password reset token issued",
		slog.String("email", toEmail),
		slog.String("reset_token", resetToken),
	)
	return nil
}

// ForConfig picks the SMTP mailer when a relay is configured and the log
// mailer otherwise.
func ForConfig(cfg *config.Config, logger *slog.Logger) portssvc.Mailer {
	if cfg.SMTPAddr != "" {
		return NewSMTPMailer(cfg)
	}
	logger.Warn("SMTP_ADDR not set; password reset tokens will be logged, not mailed")
	return NewLogMailer(logger)
}
