// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package telemetry

import "errors"

var (
	ErrUnknownExporter     = errors.New("unknown exporter")
	ErrOTLPEndpointMissing = errors.New("OTLP endpoint not configured")
)
