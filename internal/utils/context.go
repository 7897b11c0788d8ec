// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across the go-tours server:
// typed context keys, JSON response writing, identity token signing and
// verification, password reset tickets and identifier generation.
package utils

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tours/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// PrincipalCtxKey stores the authenticated models.Principal.
	PrincipalCtxKey = contextKey("principal")

	// RequestTimeCtxKey stores the moment the request entered the server.
	RequestTimeCtxKey = contextKey("requestTime")
)

// WithPrincipal returns a copy of ctx carrying the principal.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// GetPrincipalFromContext retrieves the principal stored by WithPrincipal.
// ok is false when the request was never authenticated.
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return p, ok
}

// WithRequestTime returns a copy of ctx carrying the request arrival time.
func WithRequestTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, RequestTimeCtxKey, t)
}

// GetRequestTimeFromContext returns the request arrival time, or the current
// time when none was recorded.
func GetRequestTimeFromContext(ctx context.Context) time.Time {
	if t, ok := ctx.Value(RequestTimeCtxKey).(time.Time); ok {
		return t
	}
	return time.Now()
}
