// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-tours/internal/logger"
)

// panicError is a recovered panic value together with the stack of the
// goroutine that panicked.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("%v: %v", ErrPanic, e.value)
}

func (e *panicError) Unwrap() error {
	return ErrPanic
}

// withRecoverer turns a panicking handler into a 500 written by writeError.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func (h *Handler) withRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			stack := debug.Stack()
			logger.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", stack).
				Msg("recovered from panic")
			h.writeError(w, r, &panicError{value: rec, stack: stack})
		}()

		next.ServeHTTP(w, r)
	})
}
