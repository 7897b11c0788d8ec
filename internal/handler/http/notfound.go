// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-tours/internal/app"
	"github.com/MKhiriev/go-tours/internal/apperr"
)

// notFound answers unmatched routes and unsupported methods alike.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, apperr.Wrap(http.StatusNotFound, fmt.Sprintf(app.MsgRouteNotFound, r.URL.Path), ErrRouteNotFound))
}
