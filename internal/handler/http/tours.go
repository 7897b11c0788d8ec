// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-tours/internal/query"
	"github.com/MKhiriev/go-tours/internal/utils"
	"github.com/MKhiriev/go-tours/models"
	"github.com/go-chi/chi/v5"
)

// topFiveParams preset the list query of GET /tours/topfive.
var topFiveParams = map[string]string{
	query.ParamLimit:  "5",
	query.ParamSort:   "-ratingsAverage,price",
	query.ParamFields: "name,ratingsAverage,price,summary,duration",
}

// aliasTopFive rewrites the query string so the list handler returns the
// five best rated, cheapest tours.
func aliasTopFive(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		for k, v := range topFiveParams {
			q.Set(k, v)
		}
		r.URL.RawQuery = q.Encode()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) listTours(w http.ResponseWriter, r *http.Request) error {
	tours, err := h.services.TourService.ListTours(r.Context(), r.URL.Query())
	if err != nil {
		return err
	}
	return writeList(w, r, "tours", tours)
}

func (h *Handler) getTour(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r, "tourId")
	if err != nil {
		return err
	}

	tour, err := h.services.TourService.GetTour(r.Context(), id)
	if err != nil {
		return err
	}
	return writeData(w, "tour", tour, http.StatusOK)
}

func (h *Handler) createTour(w http.ResponseWriter, r *http.Request) error {
	var tour models.Tour
	if err := utils.ReadJSON(r, &tour); err != nil {
		return err
	}

	created, err := h.services.TourService.CreateTour(r.Context(), tour)
	if err != nil {
		return err
	}
	return writeData(w, "tour", created, http.StatusCreated)
}

func (h *Handler) updateTour(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r, "tourId")
	if err != nil {
		return err
	}

	var update models.TourUpdate
	if err = utils.ReadJSON(r, &update); err != nil {
		return err
	}

	tour, err := h.services.TourService.UpdateTour(r.Context(), id, update)
	if err != nil {
		return err
	}
	return writeData(w, "tour", tour, http.StatusOK)
}

func (h *Handler) deleteTour(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r, "tourId")
	if err != nil {
		return err
	}

	if err = h.services.TourService.DeleteTour(r.Context(), id); err != nil {
		return err
	}
	return writeNoContent(w)
}

func (h *Handler) tourStats(w http.ResponseWriter, r *http.Request) error {
	stats, err := h.services.TourService.TourStats(r.Context())
	if err != nil {
		return err
	}
	return writeData(w, "stats", stats, http.StatusOK)
}

func (h *Handler) monthlyPlan(w http.ResponseWriter, r *http.Request) error {
	raw := chi.URLParam(r, "year")
	year, err := strconv.Atoi(raw)
	if err != nil || len(raw) != 4 || year < 1 {
		return fmt.Errorf("%w: %q", ErrInvalidYear, raw)
	}

	plan, err := h.services.TourService.MonthlyPlan(r.Context(), year)
	if err != nil {
		return err
	}
	return writeList(w, r, "plan", plan)
}
