// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// defaults returns the values used for every field left empty by all
// configuration sources.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Mode:            ModeDevelopment,
			TokenIssuer:     "go-tours",
			TokenDuration:   90 * 24 * time.Hour,
			CookieExpiresIn: 90,
			ResetTokenTTL:   10 * time.Minute,
		},
		Server: Server{
			HTTPAddress:     ":3000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			RateLimit:       100,
			RateWindow:      time.Hour,
		},
		Adapter: Adapter{
			Mail: Mail{
				Port: 587,
				From: "Natours <hello@go-tours.io>",
			},
		},
		Workers: Workers{
			ResetTokenPurgeInterval: time.Hour,
		},
		Telemetry: Telemetry{
			ServiceName:     "go-tours",
			TracesExporter:  "none",
			MetricsExporter: "none",
		},
	}
}
