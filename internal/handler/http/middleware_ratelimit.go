// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/httprate"
)

// ErrRateLimited is returned once a client exhausts its request budget.
var ErrRateLimited = errors.New("rate limit exceeded")

// withRateLimit limits requests per client IP to the configured budget per
// window, answering 429 through writeError.
func (h *Handler) withRateLimit() func(http.Handler) http.Handler {
	return httprate.Limit(
		h.server.RateLimit,
		h.server.RateWindow,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			h.writeError(w, r, ErrRateLimited)
		}),
	)
}
