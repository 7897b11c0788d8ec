// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while reading a request, before any service is
// called. Callers can match against them with [errors.Is].
var (
	// ErrInvalidID is returned when an {id} path segment is not a positive
	// integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidYear is returned when the monthly plan year is not a
	// four-digit number.
	ErrInvalidYear = errors.New("invalid year")

	// ErrNoPrincipal is returned when a handler behind protect finds no
	// principal in the request context.
	ErrNoPrincipal = errors.New("no principal in request context")

	// ErrPermissionDenied is returned by authorize when the principal's role
	// is not allowed.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrRouteNotFound is returned for unmatched routes and methods.
	ErrRouteNotFound = errors.New("route not found")

	// ErrPanic wraps a value recovered from a panicking handler.
	ErrPanic = errors.New("handler panicked")
)
