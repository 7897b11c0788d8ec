// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-tours/internal/config"
	"github.com/MKhiriev/go-tours/internal/handler"
	"github.com/MKhiriev/go-tours/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	components []Server
	logger     *logger.Logger
}

// NewServer builds the HTTP server from handlers. Every background worker
// passed in runs alongside it.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, workers ...Server) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	components := make([]Server, 0, len(workers)+1)
	components = append(components, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	components = append(components, workers...)

	return &server{components: components, logger: logger}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	for _, c := range s.components {
		g.Go(func() error {
			return c.RunServer(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
