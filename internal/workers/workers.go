// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-tours/internal/config"
	"github.com/MKhiriev/go-tours/internal/logger"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds every background job enabled by cfg.
func NewWorkers(users ResetTokenPurger, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewResetTokenJanitor(users, cfg.ResetTokenPurgeInterval, logger),
		},
	}
}

// RunServer runs all workers until ctx is cancelled or one of them fails.
func (w *Workers) RunServer(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.RunServer(ctx)
		})
	}
	return g.Wait()
}
