// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-tours/internal/config"
	"github.com/MKhiriev/go-tours/internal/logger"
	"github.com/MKhiriev/go-tours/internal/service"
	"github.com/MKhiriev/go-tours/internal/telemetry"
)

type Handler struct {
	services *service.Services

	app    config.App
	server config.Server

	telemetry   *telemetry.Telemetry
	httpMetrics *telemetry.HTTPMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, tel *telemetry.Telemetry, logger *logger.Logger) (*Handler, error) {
	if tel == nil {
		tel = telemetry.Nop()
	}

	httpMetrics, err := telemetry.NewHTTPMetrics(tel.Meter())
	if err != nil {
		return nil, fmt.Errorf("error creating http metrics: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		app:         cfg.App,
		server:      cfg.Server,
		telemetry:   tel,
		httpMetrics: httpMetrics,
		logger:      logger,
	}, nil
}

// appHandler is a route handler that reports failures by returning them.
// Every returned error is written by writeError.
type appHandler func(w http.ResponseWriter, r *http.Request) error

func (h *Handler) handle(fn appHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.writeError(w, r, err)
		}
	}
}
