package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/resend/resend-go/v3"

	"portfolio-api/internal/config"
	"portfolio-api/internal/domain"
)

const contactEmailTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<h2 style="border-bottom: 2px solid #222; padding-bottom: 10px;">New Contact Form Submission</h2>
	<div style="margin: 20px 0;">
		<p><strong>Name:</strong> {{.Name}}</p>
		<p><strong>Email:</strong> {{.Email}}</p>
	</div>
	<div style="background: #f5f5f5; padding: 20px; border-radius: 5px;">
		<h3 style="margin-top: 0;">Message:</h3>
		<p style="white-space: pre-wrap;">{{.Message}}</p>
	</div>
	<hr style="margin: 30px 0; border: none; border-top: 1px solid #ddd;" />
	<p style="color: #666; font-size: 12px;">This email was sent from your portfolio contact form.</p>
</div>`

var contactTmpl = template.Must(template.New("contact").Parse(contactEmailTemplate))

type EmailService interface {
	SendContactEmail(ctx context.Context, msg domain.ContactMessage) error
}

type emailService struct {
	client *resend.Client
	cfg    *config.Config
}

func NewEmailService(cfg *config.Config) EmailService {
	return &emailService{
		client: resend.NewClient(cfg.ResendAPIKey),
		cfg:    cfg,
	}
}

func (s *emailService) SendContactEmail(ctx context.Context, msg domain.ContactMessage) error {
	if strings.TrimSpace(msg.Name) == "" || strings.TrimSpace(msg.Email) == "" || strings.TrimSpace(msg.Message) == "" {
		return fmt.Errorf("%w: name, email and message are required", ErrValidation)
	}

	var body bytes.Buffer
	if err := contactTmpl.Execute(&body, msg); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Portfolio Contact <%s>", s.cfg.FromEmail),
		To:      []string{s.cfg.ContactEmail},
		ReplyTo: msg.Email,
		Subject: fmt.Sprintf("Portfolio Contact: %s", msg.Name),
		Html:    body.String(),
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
