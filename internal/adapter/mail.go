// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tours/internal/config"
	"github.com/MKhiriev/go-tours/internal/logger"
	"github.com/MKhiriev/go-tours/models"
	"github.com/wneessen/go-mail"
)

const defaultMailTimeout = 15 * time.Second

type smtpMailer struct {
	host    string
	from    string
	options []mail.Option

	logger *logger.Logger
}

// NewSMTPMailer constructs an SMTP implementation of [Mailer]. STARTTLS is
// used when the relay offers it. PLAIN authentication is enabled only when
// a username is configured.
func NewSMTPMailer(cfg config.Mail, logger *logger.Logger) (Mailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: empty relay host", ErrInvalidMail)
	}

	options := []mail.Option{
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(defaultMailTimeout),
	}
	if cfg.Port > 0 {
		options = append(options, mail.WithPort(cfg.Port))
	}
	if cfg.Username != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	return &smtpMailer{host: cfg.Host, from: cfg.From, options: options, logger: logger}, nil
}

// Send composes a plain-text message and delivers it over a fresh SMTP
// connection.
func (m *smtpMailer) Send(ctx context.Context, email models.Email) error {
	log := logger.FromContext(ctx)

	msg, err := m.compose(email)
	if err != nil {
		log.Err(err).Str("func", "*smtpMailer.Send").Msg("error composing mail")
		return err
	}

	client, err := mail.NewClient(m.host, m.options...)
	if err != nil {
		log.Err(err).Str("func", "*smtpMailer.Send").Msg("error creating smtp client")
		return fmt.Errorf("%w: %w", ErrInvalidMail, err)
	}

	if err = client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Err(err).Str("func", "*smtpMailer.Send").Str("to", email.To).Msg("error sending mail")
		return mapMailError(err)
	}

	log.Debug().Str("func", "*smtpMailer.Send").Str("to", email.To).Msg("mail sent")
	return nil
}

func (m *smtpMailer) compose(email models.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("%w: sender: %w", ErrInvalidMail, err)
	}
	if err := msg.To(email.To); err != nil {
		return nil, fmt.Errorf("%w: recipient: %w", ErrInvalidMail, err)
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextPlain, email.Body)

	return msg, nil
}
