// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig in the JSON file layout.
// Durations are written as strings such as "10m" or "90h".
type StructuredJSONConfig struct {
	App struct {
		Mode                    string   `json:"mode"`
		TokenSignKey            string   `json:"token_sign_key"`
		TokenIssuer             string   `json:"token_issuer"`
		TokenDuration           Duration `json:"token_duration"`
		CookieExpiresIn         int      `json:"cookie_expires_in"`
		ResetTokenTTL           Duration `json:"reset_token_ttl"`
		ConcealAccountExistence bool     `json:"conceal_account_existence"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN      string `json:"dsn"`
			Password string `json:"password"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		RateLimit       int      `json:"rate_limit"`
		RateWindow      Duration `json:"rate_window"`
		AllowedOrigins  []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		Mail struct {
			Host     string `json:"host"`
			Port     int    `json:"port"`
			Username string `json:"username"`
			Password string `json:"password"`
			From     string `json:"from"`
		} `json:"mail,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ResetTokenPurgeInterval Duration `json:"reset_token_purge_interval"`
	} `json:"workers,omitempty"`

	Telemetry struct {
		ServiceName     string `json:"service_name"`
		TracesExporter  string `json:"traces_exporter"`
		MetricsExporter string `json:"metrics_exporter"`
	} `json:"telemetry,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Mode:                    jsonCfg.App.Mode,
			TokenSignKey:            jsonCfg.App.TokenSignKey,
			TokenIssuer:             jsonCfg.App.TokenIssuer,
			TokenDuration:           time.Duration(jsonCfg.App.TokenDuration),
			CookieExpiresIn:         jsonCfg.App.CookieExpiresIn,
			ResetTokenTTL:           time.Duration(jsonCfg.App.ResetTokenTTL),
			ConcealAccountExistence: jsonCfg.App.ConcealAccountExistence,
		},
		Storage: Storage{
			DB: DB{
				DSN:      jsonCfg.Storage.DB.DSN,
				Password: jsonCfg.Storage.DB.Password,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			RateLimit:       jsonCfg.Server.RateLimit,
			RateWindow:      time.Duration(jsonCfg.Server.RateWindow),
			AllowedOrigins:  jsonCfg.Server.AllowedOrigins,
		},
		Adapter: Adapter{
			Mail: Mail{
				Host:     jsonCfg.Adapter.Mail.Host,
				Port:     jsonCfg.Adapter.Mail.Port,
				Username: jsonCfg.Adapter.Mail.Username,
				Password: jsonCfg.Adapter.Mail.Password,
				From:     jsonCfg.Adapter.Mail.From,
			},
		},
		Workers: Workers{
			ResetTokenPurgeInterval: time.Duration(jsonCfg.Workers.ResetTokenPurgeInterval),
		},
		Telemetry: Telemetry{
			ServiceName:     jsonCfg.Telemetry.ServiceName,
			TracesExporter:  jsonCfg.Telemetry.TracesExporter,
			MetricsExporter: jsonCfg.Telemetry.MetricsExporter,
		},
	}

	return cfg, nil
}

// Duration wraps time.Duration to accept "1h"-style strings in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
