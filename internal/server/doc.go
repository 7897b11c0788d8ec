// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's HTTP server and
// background workers.
//
// Both run under one errgroup bound to the process signals. The first to
// fail, or a SIGINT/SIGTERM, stops the rest; the HTTP server is then shut
// down gracefully within the configured timeout.
package server
