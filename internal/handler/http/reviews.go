// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tours/internal/utils"
	"github.com/MKhiriev/go-tours/models"
	"github.com/go-chi/chi/v5"
)

// tourIDFromPath returns the {tourId} of nested review routes, or 0 on the
// top-level /reviews routes.
func tourIDFromPath(r *http.Request) (int64, error) {
	if chi.URLParam(r, "tourId") == "" {
		return 0, nil
	}
	return idParam(r, "tourId")
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) error {
	tourID, err := tourIDFromPath(r)
	if err != nil {
		return err
	}

	reviews, err := h.services.ReviewService.ListReviews(r.Context(), tourID, r.URL.Query())
	if err != nil {
		return err
	}
	return writeList(w, r, "reviews", reviews)
}

func (h *Handler) getReview(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r, "id")
	if err != nil {
		return err
	}

	review, err := h.services.ReviewService.GetReview(r.Context(), id)
	if err != nil {
		return err
	}
	return writeData(w, "review", review, http.StatusOK)
}

// createReview stores a review by the principal. On nested routes the tour
// comes from the path, otherwise from the body.
func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) error {
	principal, err := principalFrom(r)
	if err != nil {
		return err
	}

	tourID, err := tourIDFromPath(r)
	if err != nil {
		return err
	}

	var review models.Review
	if err = utils.ReadJSON(r, &review); err != nil {
		return err
	}
	if tourID != 0 {
		review.TourID = tourID
	}
	review.UserID = principal.UserID

	created, err := h.services.ReviewService.CreateReview(r.Context(), review)
	if err != nil {
		return err
	}
	return writeData(w, "review", created, http.StatusCreated)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) error {
	principal, err := principalFrom(r)
	if err != nil {
		return err
	}

	id, err := idParam(r, "id")
	if err != nil {
		return err
	}

	var update models.ReviewUpdate
	if err = utils.ReadJSON(r, &update); err != nil {
		return err
	}

	review, err := h.services.ReviewService.UpdateReview(r.Context(), principal, id, update)
	if err != nil {
		return err
	}
	return writeData(w, "review", review, http.StatusOK)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) error {
	principal, err := principalFrom(r)
	if err != nil {
		return err
	}

	id, err := idParam(r, "id")
	if err != nil {
		return err
	}

	if err = h.services.ReviewService.DeleteReview(r.Context(), principal, id); err != nil {
		return err
	}
	return writeNoContent(w)
}
