// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

var (
	knownTracesExporters  = []string{"stdout", "otlp", "none"}
	knownMetricsExporters = []string{"stdout", "otlp", "prometheus", "none"}
)

func (cfg *StructuredConfig) validate() error {
	if cfg.App.Mode != ModeDevelopment && cfg.App.Mode != ModeProduction {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidAppConfigs, cfg.App.Mode)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 || cfg.App.CookieExpiresIn <= 0 || cfg.App.ResetTokenTTL <= 0 {
		return fmt.Errorf("%w: token, cookie and reset ticket lifetimes must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown timeout must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Server.RateLimit <= 0 || cfg.Server.RateWindow <= 0 {
		return fmt.Errorf("%w: rate limit and window must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.Mail.Host == "" || cfg.Adapter.Mail.From == "" {
		return fmt.Errorf("%w: mail host and sender are required", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.ResetTokenPurgeInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if !slices.Contains(knownTracesExporters, cfg.Telemetry.TracesExporter) {
		return fmt.Errorf("%w: traces exporter must be one of %v", ErrInvalidTelemetryConfigs, knownTracesExporters)
	}

	if !slices.Contains(knownMetricsExporters, cfg.Telemetry.MetricsExporter) {
		return fmt.Errorf("%w: metrics exporter must be one of %v", ErrInvalidTelemetryConfigs, knownMetricsExporters)
	}

	return nil
}
