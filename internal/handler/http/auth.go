// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-tours/internal/app"
	"github.com/MKhiriev/go-tours/internal/logger"
	"github.com/MKhiriev/go-tours/internal/utils"
	"github.com/MKhiriev/go-tours/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) error {
	var req models.SignupRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		return err
	}

	user, err := h.services.AuthService.Signup(r.Context(), req)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Info().Int64("id", user.ID).Msg("user signed up")
	return h.sendToken(w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) error {
	var req models.LoginRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		return err
	}

	user, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		return err
	}

	return h.sendToken(w, r, user, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) error {
	var req models.ForgotPasswordRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		return err
	}

	resetURLPrefix := requestBaseURL(r) + "/api/v1/users/resetpass/"
	if err := h.services.AuthService.ForgotPassword(r.Context(), req.Email, resetURLPrefix); err != nil {
		return err
	}

	_, err := utils.WriteJSON(w, models.Envelope{Status: models.StatusSuccess, Message: app.MsgResetTokenSent}, http.StatusOK)
	return err
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) error {
	var req models.ResetPasswordRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		return err
	}

	user, err := h.services.AuthService.ResetPassword(r.Context(), chi.URLParam(r, "token"), req)
	if err != nil {
		return err
	}

	return h.sendToken(w, r, user, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) error {
	principal, err := principalFrom(r)
	if err != nil {
		return err
	}

	var req models.UpdatePasswordRequest
	if err = utils.ReadJSON(r, &req); err != nil {
		return err
	}

	user, err := h.services.AuthService.UpdatePassword(r.Context(), principal.UserID, req)
	if err != nil {
		return err
	}

	return h.sendToken(w, r, user, http.StatusOK)
}

// sendToken issues a token for user and writes it both as the jwt cookie
// and in the response body.
func (h *Handler) sendToken(w http.ResponseWriter, r *http.Request, user models.User, status int) error {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     jwtCookie,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(h.app.CookieExpiresIn) * 24 * time.Hour),
		HttpOnly: true,
		Secure:   h.app.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})

	body := models.DataEnvelope("user", user)
	body.Token = token.SignedString
	_, err = utils.WriteJSON(w, body, status)
	return err
}

// requestBaseURL returns scheme://host of the request as seen by the client.
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	return scheme + "://" + r.Host
}
