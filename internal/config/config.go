// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// Application modes.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// passwordPlaceholder is replaced in the database DSN by DB.Password.
const passwordPlaceholder = "<PASSWORD>"

// StructuredConfig is the top-level configuration of the go-tours server.
// It is populated by merging environment variables, command-line flags and
// an optional JSON file, then completed with defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	// App holds token, cookie and password-reset settings.
	App App `envPrefix:"APP_"`

	// Storage holds the database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener, rate limiting and CORS settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the outbound integrations (SMTP).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job periods.
	Workers Workers `envPrefix:"WORKERS_"`

	// Telemetry selects the OpenTelemetry exporters.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App groups application-level settings.
type App struct {
	// Mode is "development" or "production". Production hides internal
	// error details and marks the auth cookie Secure.
	Mode string `env:"MODE"`

	// TokenSignKey is the HMAC secret used to sign identity tokens.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is written to and checked against the "iss" claim.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an identity token.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// CookieExpiresIn is the lifetime of the "jwt" cookie in days.
	CookieExpiresIn int `env:"COOKIE_EXPIRES_IN"`

	// ResetTokenTTL is how long a password reset ticket stays valid.
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL"`

	// ConcealAccountExistence makes forgot-password answer identically for
	// known and unknown emails.
	ConcealAccountExistence bool `env:"CONCEAL_ACCOUNT_EXISTENCE"`
}

// IsProduction reports whether the application runs in production mode.
func (a App) IsProduction() bool {
	return a.Mode == ModeProduction
}

// Storage groups the persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the PostgreSQL connection settings.
type DB struct {
	// DSN is the connection string. It may contain the literal
	// "<PASSWORD>" which is substituted with Password.
	DSN string `env:"DATABASE_URI"`

	// Password is substituted into DSN.
	Password string `env:"PASSWORD"`
}

// ConnectionString returns DSN with the password placeholder resolved.
func (db DB) ConnectionString() string {
	if db.Password == "" {
		return db.DSN
	}
	return strings.ReplaceAll(db.DSN, passwordPlaceholder, db.Password)
}

// Server holds the HTTP server settings.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// RateLimit is the number of /api requests allowed per client IP
	// within RateWindow.
	RateLimit int `env:"RATE_LIMIT"`

	// RateWindow is the fixed window of the rate limiter.
	RateWindow time.Duration `env:"RATE_WINDOW"`

	// AllowedOrigins lists the CORS origins. Empty allows any origin.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Adapter groups outbound integrations.
type Adapter struct {
	Mail Mail `envPrefix:"MAIL_"`
}

// Mail holds the SMTP relay settings used for password reset mails.
type Mail struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM"`
}

// Workers holds background job settings.
type Workers struct {
	// ResetTokenPurgeInterval is how often expired reset tickets are cleared.
	ResetTokenPurgeInterval time.Duration `env:"RESET_TOKEN_PURGE_INTERVAL"`
}

// Telemetry selects the OpenTelemetry exporters.
type Telemetry struct {
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string `env:"SERVICE_NAME"`

	// TracesExporter is one of "stdout", "otlp" or "none".
	TracesExporter string `env:"TRACES_EXPORTER"`

	// MetricsExporter is one of "stdout", "otlp", "prometheus" or "none".
	// With "prometheus" the server exposes GET /metrics.
	MetricsExporter string `env:"METRICS_EXPORTER"`
}

// GetStructuredConfig loads the configuration from all sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
