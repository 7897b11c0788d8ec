// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tours/internal/logger"
	"github.com/MKhiriev/go-tours/internal/utils"
	"github.com/MKhiriev/go-tours/models"
)

// jwtCookie is the name of the cookie carrying the identity token.
const jwtCookie = "jwt"

// protect is an HTTP middleware that enforces JWT-based authentication.
//
// The token is taken from the "Authorization: Bearer" header, falling back to
// the "jwt" cookie. It is verified by [service.AuthService.Authenticate] and,
// on success, the resolved principal is stored in the request context with
// [utils.WithPrincipal] before delegating to the next handler.
//
// Rejections are written by writeError with status 401.
func (h *Handler) protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := tokenFromRequest(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		user, err := h.services.AuthService.Authenticate(r.Context(), tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("authentication failed")
			h.writeError(w, r, err)
			return
		}

		ctx := utils.WithPrincipal(r.Context(), user.Principal())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authorize returns a middleware letting through only principals whose role
// is allowed by perm. It must run after protect.
func (h *Handler) authorize(perm models.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := utils.GetPrincipalFromContext(r.Context())
			if !ok {
				h.writeError(w, r, ErrNoPrincipal)
				return
			}

			if !perm.Allows(principal.Role) {
				logger.FromRequest(r).Warn().
					Int64("user", principal.UserID).
					Str("role", string(principal.Role)).
					Str("permission", perm.Name).
					Msg("permission denied")
				h.writeError(w, r, ErrPermissionDenied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// tokenFromRequest extracts the identity token from the Authorization header
// or the jwt cookie. It returns utils.ErrNoBearerToken when neither is set.
func tokenFromRequest(r *http.Request) (string, error) {
	token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err == nil && token != "" {
		return token, nil
	}

	if cookie, cerr := r.Cookie(jwtCookie); cerr == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", utils.ErrNoBearerToken
}

// principalFrom returns the principal stored by protect.
func principalFrom(r *http.Request) (models.Principal, error) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		return models.Principal{}, ErrNoPrincipal
	}
	return principal, nil
}
