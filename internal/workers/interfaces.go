// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the server.
//
// Each Worker blocks in RunServer until its context is cancelled. Workers
// runs a set of them under one errgroup so it can be handed to the server
// like any other component.
package workers

import "context"

// Worker is a background job that runs until ctx is cancelled.
//
// A Worker returns nil on cancellation. A non-nil error stops every other
// component of the server.
type Worker interface {
	RunServer(ctx context.Context) error
}

// ResetTokenPurger is the part of the user service the janitor needs.
type ResetTokenPurger interface {
	PurgeExpiredResetTokens(ctx context.Context) (int64, error)
}
