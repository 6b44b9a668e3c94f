package mailer

import (
	"context"
	"fmt"

	"licitaya-api/internal/entity"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const verificationSubject = "Verify your LicitaYa account"

// Sender delivers a single verification email.
type Sender interface {
	SendVerification(ctx context.Context, email entity.VerificationEmail) error
}

type SendGridSender struct {
	client        *sendgrid.Client
	fromEmail     string
	verifyBaseUrl string
}

func NewSendGridSender(apiKey string, fromEmail string, verifyBaseUrl string) *SendGridSender {
	return &SendGridSender{
		client:        sendgrid.NewSendClient(apiKey),
		fromEmail:     fromEmail,
		verifyBaseUrl: verifyBaseUrl,
	}
}

func (s *SendGridSender) SendVerification(ctx context.Context, email entity.VerificationEmail) error {
	verificationUrl := fmt.Sprintf("%s/verify?token=%s", s.verifyBaseUrl, email.Token)

	from := mail.NewEmail("LicitaYa", s.fromEmail)
	to := mail.NewEmail(email.Name, email.Email)
	plainText := fmt.Sprintf("Hello %s,\n\nVerify your LicitaYa account by opening the link below:\n%s\n\nThe link is valid for 24 hours.",
		email.Name, verificationUrl)
	htmlContent := fmt.Sprintf(`<p>Hello %s,</p><p>Verify your LicitaYa account by clicking <a href="%s">here</a>.</p><p>The link is valid for 24 hours.</p>`,
		email.Name, verificationUrl)

	message := mail.NewSingleEmail(from, verificationSubject, to, plainText, htmlContent)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("error while sending verification email. %w", err)
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("verification email rejected with status %d. %s", response.StatusCode, response.Body)
	}

	return nil
}
