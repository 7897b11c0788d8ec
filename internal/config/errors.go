// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	ErrInvalidAppConfigs       = errors.New("invalid app configuration")
	ErrInvalidStorageConfigs   = errors.New("invalid storage configuration")
	ErrInvalidServerConfigs    = errors.New("invalid server configuration")
	ErrInvalidAdapterConfigs   = errors.New("invalid adapter configuration")
	ErrInvalidWorkerConfigs    = errors.New("invalid worker configuration")
	ErrInvalidTelemetryConfigs = errors.New("invalid telemetry configuration")
)
