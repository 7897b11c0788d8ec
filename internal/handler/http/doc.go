// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the tours API.
//
// Init wires the chi router: request tracing, panic recovery, telemetry,
// CORS and security headers apply to every request, while rate limiting,
// the body size cap and input sanitization guard the /api subtree. Route
// handlers return errors instead of writing them; writeError turns every
// error into the JSON error envelope with the right status.
package http
