// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until ctx is cancelled or a component fails, and
// releases every resource before returning.
type Server interface {
	// RunServer starts serving and blocks until the server stops.
	RunServer(ctx context.Context) error
}

