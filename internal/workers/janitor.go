// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tours/internal/logger"
	"github.com/MKhiriev/go-tours/internal/store"
)

const (
	janitorMaxAttempts = 3
	janitorRetryDelay  = 2 * time.Second
)

// ResetTokenJanitor periodically clears password reset tickets that have
// expired without being used.
type ResetTokenJanitor struct {
	users      ResetTokenPurger
	interval   time.Duration
	retryDelay time.Duration
	logger     *logger.Logger
}

func NewResetTokenJanitor(users ResetTokenPurger, interval time.Duration, logger *logger.Logger) *ResetTokenJanitor {
	return &ResetTokenJanitor{
		users:      users,
		interval:   interval,
		retryDelay: janitorRetryDelay,
		logger:     logger,
	}
}

// RunServer purges on every tick until ctx is cancelled. Failures are
// logged and never stop the server.
func (j *ResetTokenJanitor) RunServer(ctx context.Context) error {
	j.logger.Info().Dur("interval", j.interval).Msg("reset token janitor started")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("reset token janitor stopped")
			return nil
		case <-ticker.C:
			j.purge(ctx)
		}
	}
}

// purge retries transient database failures a few times before giving up
// until the next tick.
func (j *ResetTokenJanitor) purge(ctx context.Context) {
	for attempt := 1; attempt <= janitorMaxAttempts; attempt++ {
		purged, err := j.users.PurgeExpiredResetTokens(ctx)
		if err == nil {
			if purged > 0 {
				j.logger.Info().Int64("purged", purged).Msg("expired reset tokens cleared")
			}
			return
		}

		if !store.IsRetryable(err) || attempt == janitorMaxAttempts {
			j.logger.Err(err).Int("attempt", attempt).Msg("error purging expired reset tokens")
			return
		}

		j.logger.Warn().Err(err).Int("attempt", attempt).Msg("transient error purging reset tokens, retrying")
		select {
		case <-ctx.Done():
			return
		case <-time.After(j.retryDelay):
		}
	}
}
