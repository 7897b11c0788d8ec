// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tours/internal/utils"
	"github.com/MKhiriev/go-tours/models"
)

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) error {
	principal, err := principalFrom(r)
	if err != nil {
		return err
	}

	user, err := h.services.UserService.GetUser(r.Context(), principal.UserID)
	if err != nil {
		return err
	}
	return writeData(w, "user", user, http.StatusOK)
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) error {
	principal, err := principalFrom(r)
	if err != nil {
		return err
	}

	var req models.UpdateMeRequest
	if err = utils.ReadJSON(r, &req); err != nil {
		return err
	}

	user, err := h.services.UserService.UpdateMe(r.Context(), principal.UserID, req)
	if err != nil {
		return err
	}
	return writeData(w, "user", user, http.StatusOK)
}

func (h *Handler) deleteMe(w http.ResponseWriter, r *http.Request) error {
	principal, err := principalFrom(r)
	if err != nil {
		return err
	}

	if err = h.services.UserService.DeleteMe(r.Context(), principal.UserID); err != nil {
		return err
	}
	return writeNoContent(w)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) error {
	users, err := h.services.UserService.ListUsers(r.Context(), r.URL.Query())
	if err != nil {
		return err
	}
	return writeList(w, r, "users", users)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r, "id")
	if err != nil {
		return err
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		return err
	}
	return writeData(w, "user", user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r, "id")
	if err != nil {
		return err
	}

	var update models.UserUpdate
	if err = utils.ReadJSON(r, &update); err != nil {
		return err
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), id, update)
	if err != nil {
		return err
	}
	return writeData(w, "user", user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r, "id")
	if err != nil {
		return err
	}

	if err = h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		return err
	}
	return writeNoContent(w)
}
