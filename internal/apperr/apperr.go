// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apperr defines operational errors: failures caused by the client
// that carry the HTTP status and message to report. Anything else reaching
// the HTTP layer is treated as a programming error.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Response statuses of the JSON envelope.
const (
	StatusFail  = "fail"
	StatusError = "error"
)

// Error is an operational error.
type Error struct {
	StatusCode int
	Message    string
	Err        error
}

// New returns an operational error without a cause.
func New(statusCode int, message string) *Error {
	return &Error{StatusCode: statusCode, Message: message}
}

// Wrap returns an operational error caused by err.
func Wrap(statusCode int, message string, err error) *Error {
	return &Error{StatusCode: statusCode, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status is "fail" for client errors and "error" otherwise.
func (e *Error) Status() string {
	return StatusOf(e.StatusCode)
}

// StatusOf returns the envelope status for an HTTP status code.
func StatusOf(statusCode int) string {
	if statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError {
		return StatusFail
	}
	return StatusError
}

// As returns the operational error in err's chain, if any.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
