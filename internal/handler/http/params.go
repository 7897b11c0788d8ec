// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-tours/internal/utils"
	"github.com/MKhiriev/go-tours/models"
	"github.com/go-chi/chi/v5"
)

// idParam parses the named path parameter as a positive id.
func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidID, name, raw)
	}
	return id, nil
}

// writeList writes a list envelope with the result count and request time.
func writeList[T any](w http.ResponseWriter, r *http.Request, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	requestedAt := utils.GetRequestTimeFromContext(r.Context()).UTC().Format("2006-01-02T15:04:05.000Z07:00")
	_, err := utils.WriteJSON(w, models.ListEnvelope(key, items, len(items), requestedAt), http.StatusOK)
	return err
}

func writeData(w http.ResponseWriter, key string, item any, status int) error {
	_, err := utils.WriteJSON(w, models.DataEnvelope(key, item), status)
	return err
}

func writeNoContent(w http.ResponseWriter) error {
	w.WriteHeader(http.StatusNoContent)
	return nil
}
