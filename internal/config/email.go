package config

import (
	"context"
	"log"
	"os"

	"github.com/resend/resend-go/v2"
	"go.uber.org/fx"
)

type ResendConfig struct {
	APIKey string
	From   string
}

func NewResendConfig() *ResendConfig {
	apiKey := os.Getenv("RESEND_API_KEY")
	fromEmail := os.Getenv("FROM_EMAIL")
	if apiKey == "" || fromEmail == "" {
		log.Fatal("Missing Resend environment variables")
	}
	return &ResendConfig{APIKey: apiKey, From: fromEmail}
}

// EmailService sends transactional mail through Resend. Callers treat failures
// as best effort: a lost receipt never fails the request that triggered it.
type EmailService struct {
	client *resend.Client
	from   string
}

func NewEmailService(lc fx.Lifecycle, config *ResendConfig) *EmailService {
	service := &EmailService{client: resend.NewClient(config.APIKey), from: config.From}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Println("Email service initialized")
			return nil
		},
	})
	return service
}

func (e *EmailService) Send(to, subject, html string) error {
	_, err := e.client.Emails.Send(&resend.SendEmailRequest{
		From:    e.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	return err
}
