package mailer

import (
	"context"
	"errors"
	"strings"

	"github.com/lshigami/juristudy/config"
	"github.com/rs/zerolog/log"
)

// ErrDisabled is returned when no mail transport is configured.
var ErrDisabled = errors.New("mailer: no transport configured")

type Address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type Message struct {
	To      []Address
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers a single message. A nil error means the transport accepted it.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// NewMailer picks the SendGrid transport when an API key is configured.
func NewMailer(cfg *config.Config) Mailer {
	if strings.TrimSpace(cfg.SendGrid.APIKey) == "" {
		log.Warn().Msg("SENDGRID_API_KEY is not set. Notification emails are disabled.")
		return disabledMailer{}
	}
	return NewSendGridMailer(SendGridConfig{
		APIKey:    cfg.SendGrid.APIKey,
		BaseURL:   cfg.SendGrid.BaseURL,
		FromEmail: cfg.SendGrid.FromEmail,
		FromName:  cfg.SendGrid.FromName,
	})
}

type disabledMailer struct{}

func (disabledMailer) Send(ctx context.Context, msg Message) error {
	log.Info().Str("subject", msg.Subject).Msg("Mailer disabled, dropping message")
	return ErrDisabled
}
