// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides abstractions for the outbound integrations of the
// tours server.
//
// The primary abstraction is [Mailer], which decouples the service layer
// from the mail transport. The package ships an SMTP implementation
// ([NewSMTPMailer]) built on go-mail.
//
// Error values defined in errors.go are mapped from SMTP failures by
// mapMailError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrMailTemporary] for 4xx replies).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-tours/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Mailer delivers transactional mail. Send returns once the relay accepted
// or rejected the message; there is no queueing.
type Mailer interface {
	Send(ctx context.Context, email models.Email) error
}
