package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/config"
)

// Message is a plain-text email.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer delivers a single message. Implementations block until the
// transport accepts or rejects the message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// NewMailer builds the transport selected by EMAIL_BACKEND.
func NewMailer(cfg config.MailConfig) (Mailer, error) {
	switch cfg.Backend {
	case "smtp":
		return NewSMTPMailer(cfg), nil
	case "resend":
		if cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("RESEND_API_KEY is required for the resend email backend")
		}
		return NewResendMailer(cfg.ResendAPIKey, cfg.Timeout()), nil
	case "console":
		return NewConsoleMailer(), nil
	default:
		return nil, fmt.Errorf("unsupported email backend %q", cfg.Backend)
	}
}

// ConsoleMailer writes messages to the log instead of delivering them.
type ConsoleMailer struct {
	logger zerolog.Logger
}

func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{logger: log.With().Str("mailer", "console").Logger()}
}

func (m *ConsoleMailer) Send(ctx context.Context, msg Message) error {
	m.logger.Info().
		Str("from", msg.From).
		Strs("to", msg.To).
		Str("replyTo", msg.ReplyTo).
		Str("subject", msg.Subject).
		Msg(msg.Body)
	return nil
}
