// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) error {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())
	return writeData(w, "build", buildInfo, http.StatusOK)
}
