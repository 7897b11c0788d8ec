// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-tours/internal/app"
	"github.com/MKhiriev/go-tours/internal/apperr"
	"github.com/MKhiriev/go-tours/internal/logger"
	"github.com/MKhiriev/go-tours/internal/query"
	"github.com/MKhiriev/go-tours/internal/service"
	"github.com/MKhiriev/go-tours/internal/store"
	"github.com/MKhiriev/go-tours/internal/utils"
	"github.com/MKhiriev/go-tours/internal/validators"
	"github.com/MKhiriev/go-tours/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// errorStatus maps a sentinel error to the response it produces.
type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is matched in order; the first sentinel found in the chain
// decides the response.
var errorStatuses = []errorStatus{
	{service.ErrMissingCredentials, http.StatusBadRequest, app.MsgProvideEmailAndPassword},
	{service.ErrIncorrectCredentials, http.StatusBadRequest, app.MsgIncorrectEmailOrPassword},
	{service.ErrAdminRoleNotAllowed, http.StatusForbidden, app.MsgAdminRoleNotAllowed},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrTokenIsInvalid, http.StatusUnauthorized, app.MsgInvalidToken},
	{service.ErrUserNoLongerExists, http.StatusUnauthorized, app.MsgUserNoLongerExists},
	{service.ErrPasswordChangedRecently, http.StatusUnauthorized, app.MsgPasswordChangedRecently},
	{service.ErrNoUserWithEmail, http.StatusNotFound, app.MsgNoUserWithEmail},
	{service.ErrResetMailFailed, http.StatusInternalServerError, app.MsgResetMailFailed},
	{service.ErrResetTokenInvalid, http.StatusBadRequest, app.MsgResetTokenInvalid},
	{service.ErrCurrentPasswordWrong, http.StatusUnauthorized, app.MsgCurrentPasswordWrong},
	{service.ErrPasswordUpdateNotAllowed, http.StatusBadRequest, app.MsgPasswordUpdateNotAllowed},
	{service.ErrNotReviewAuthor, http.StatusForbidden, app.MsgNotReviewAuthor},

	{store.ErrUserNotFound, http.StatusNotFound, app.MsgNoDocumentFound},
	{store.ErrTourNotFound, http.StatusNotFound, app.MsgNoDocumentFound},
	{store.ErrReviewNotFound, http.StatusNotFound, app.MsgNoDocumentFound},
	{store.ErrEmailAlreadyExists, http.StatusBadRequest, app.MsgDuplicateValue},
	{store.ErrTourNameTaken, http.StatusBadRequest, app.MsgDuplicateValue},
	{store.ErrAlreadyReviewed, http.StatusBadRequest, app.MsgAlreadyReviewed},
	{store.ErrUnknownReference, http.StatusBadRequest, app.MsgUnknownReference},

	{validators.ErrNoFieldsToUpdate, http.StatusBadRequest, app.MsgNoUpdateFields},
	{query.ErrMixedProjection, http.StatusBadRequest, "Cannot mix field inclusion and exclusion"},
	{utils.ErrEmptyBody, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{utils.ErrNoBearerToken, http.StatusUnauthorized, app.MsgNotLoggedIn},

	{ErrInvalidID, http.StatusBadRequest, app.MsgInvalidValue},
	{ErrInvalidYear, http.StatusBadRequest, app.MsgInvalidValue},
	{ErrNoPrincipal, http.StatusUnauthorized, app.MsgNotLoggedIn},
	{ErrPermissionDenied, http.StatusForbidden, app.MsgPermissionDenied},
	{ErrRateLimited, http.StatusTooManyRequests, app.MsgTooManyRequests},
	{ErrPanic, http.StatusInternalServerError, app.MsgInternalServerError},
}

// toAppError translates err into an operational error. It returns nil for
// errors that are not expected in normal operation.
func toAppError(err error) *apperr.Error {
	if appErr, ok := apperr.As(err); ok {
		return appErr
	}

	for _, es := range errorStatuses {
		if errors.Is(err, es.target) {
			return apperr.Wrap(es.status, es.message, err)
		}
	}

	var (
		validationErrs validators.Errors
		castErr        *query.CastError
		fieldErr       *query.FieldError
		maxBytesErr    *http.MaxBytesError
		syntaxErr      *json.SyntaxError
		typeErr        *json.UnmarshalTypeError
		pgErr          *pgconn.PgError
	)

	switch {
	case errors.As(err, &validationErrs):
		return apperr.Wrap(http.StatusBadRequest, validationErrs.Error(), err)
	case errors.As(err, &castErr):
		return apperr.Wrap(http.StatusBadRequest, castErr.Error(), err)
	case errors.As(err, &fieldErr):
		return apperr.Wrap(http.StatusBadRequest, fmt.Sprintf("Invalid field: %s", fieldErr.Field), err)
	case errors.As(err, &maxBytesErr):
		return apperr.Wrap(http.StatusRequestEntityTooLarge, app.MsgRequestTooLarge, err)
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return apperr.Wrap(http.StatusBadRequest, app.MsgInvalidDataProvided, err)
	case errors.As(err, &pgErr):
		return pgAppError(pgErr, err)
	}

	return nil
}

func pgAppError(pgErr *pgconn.PgError, err error) *apperr.Error {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return apperr.Wrap(http.StatusBadRequest, app.MsgDuplicateValue, err)
	case pgerrcode.InvalidTextRepresentation, pgerrcode.InvalidDatetimeFormat, pgerrcode.NumericValueOutOfRange:
		return apperr.Wrap(http.StatusBadRequest, app.MsgInvalidValue, err)
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return apperr.Wrap(http.StatusBadRequest, app.MsgInvalidDataProvided, err)
	}
	return nil
}

// writeError is the single stage every handler failure goes through.
// Operational errors are reported with their own status and message.
// Anything else is logged and answered with 500, with the detail exposed
// only in development mode.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	appErr := toAppError(err)
	if appErr == nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("unexpected error")
		appErr = apperr.Wrap(http.StatusInternalServerError, app.MsgInternalServerError, err)
	} else if appErr.StatusCode >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", appErr.StatusCode).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", appErr.StatusCode).Msg("request rejected")
	}

	body := models.Envelope{
		Status:  appErr.Status(),
		Message: appErr.Message,
	}
	if !h.app.IsProduction() {
		body.Error = err.Error()
		body.Stack = append(errorChain(err), panicStack(err)...)
	}

	if _, werr := utils.WriteJSON(w, body, appErr.StatusCode); werr != nil {
		log.Err(werr).Msg("error writing error response")
	}
}

// errorChain returns the message of err and of every error it wraps,
// depth first.
func errorChain(err error) []string {
	var chain []string
	for err != nil {
		chain = append(chain, err.Error())
		switch e := err.(type) {
		case interface{ Unwrap() error }:
			err = e.Unwrap()
		case interface{ Unwrap() []error }:
			for _, inner := range e.Unwrap() {
				chain = append(chain, errorChain(inner)...)
			}
			return chain
		default:
			return chain
		}
	}
	return chain
}

// panicStack returns the lines of the stack captured with a recovered
// panic, or nil if err did not come from one.
func panicStack(err error) []string {
	var pe *panicError
	if !errors.As(err, &pe) || len(pe.stack) == 0 {
		return nil
	}
	return strings.Split(strings.TrimRight(string(pe.stack), "\n"), "\n")
}
