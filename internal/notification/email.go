package notification

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"techstore/internal/config"
)

// EmailClient delivers transactional email through the configured provider
type EmailClient struct {
	config config.EmailConfig
	logger *slog.Logger
}

// NewEmailClient creates a new email client
func NewEmailClient(cfg config.EmailConfig, logger *slog.Logger) *EmailClient {
	return &EmailClient{config: cfg, logger: logger}
}

// Send delivers one rendered message to the recipient
func (e *EmailClient) Send(ctx context.Context, to string, content Rendered) error {
	switch e.config.Provider {
	case "sendgrid":
		return e.sendViaSendGrid(ctx, to, content)
	case "smtp":
		return e.sendViaSMTP(to, content)
	default:
		return fmt.Errorf("unsupported email provider: %s", e.config.Provider)
	}
}

func (e *EmailClient) sendViaSendGrid(ctx context.Context, to string, content Rendered) error {
	from := mail.NewEmail(e.config.FromName, e.config.FromAddress)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, content.Subject, recipient, content.Text, content.HTML)

	client := sendgrid.NewSendClient(e.config.SendGrid.APIKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email via SendGrid: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("SendGrid returned status %d", response.StatusCode)
	}

	e.logger.Debug("email sent via SendGrid", "to", to, "subject", content.Subject)
	return nil
}

func (e *EmailClient) sendViaSMTP(to string, content Rendered) error {
	msg := fmt.Sprintf("To: %s\r\nFrom: %s <%s>\r\nSubject: %s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		to, e.config.FromName, e.config.FromAddress, content.Subject, content.HTML)

	auth := smtp.PlainAuth("",
		e.config.SMTP.Username,
		e.config.SMTP.Password,
		e.config.SMTP.Host)

	addr := fmt.Sprintf("%s:%d", e.config.SMTP.Host, e.config.SMTP.Port)
	if err := smtp.SendMail(addr, auth, e.config.FromAddress, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}

	e.logger.Debug("email sent via SMTP", "to", to, "subject", content.Subject)
	return nil
}
