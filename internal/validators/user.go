// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-tours/models"
)

// Field names understood by UserValidator.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldRole            = "role"
	FieldPassword        = "password"
	FieldPasswordConfirm = "passwordConfirm"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// UserValidator validates account input: signup, password changes and
// profile updates.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.SignupRequest / *models.SignupRequest
//   - models.ResetPasswordRequest / *models.ResetPasswordRequest
//   - models.UpdatePasswordRequest / *models.UpdatePasswordRequest
//   - models.UserUpdate / *models.UserUpdate
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.ResetPasswordRequest:
		return validatePasswords(value.Password, value.PasswordConfirm).orNil()
	case *models.ResetPasswordRequest:
		return validatePasswords(value.Password, value.PasswordConfirm).orNil()

	case models.UpdatePasswordRequest:
		return validatePasswords(value.Password, value.PasswordConfirm).orNil()
	case *models.UpdatePasswordRequest:
		return validatePasswords(value.Password, value.PasswordConfirm).orNil()

	case models.UserUpdate:
		return v.validateUserUpdate(value)
	case *models.UserUpdate:
		return v.validateUserUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldRole, FieldPassword}
	}

	var errs Errors
	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				errs = append(errs, ErrNameRequired)
			}
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				errs = append(errs, err)
			}
		case FieldRole:
			if req.Role != "" && !req.Role.Valid() {
				errs = append(errs, ErrInvalidRole)
			}
		case FieldPassword, FieldPasswordConfirm:
			errs = append(errs, validatePasswords(req.Password, req.PasswordConfirm)...)
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func (v *UserValidator) validateUserUpdate(update models.UserUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	var errs Errors
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		errs = append(errs, ErrNameRequired)
	}
	if update.Email != nil {
		if err := validateEmail(*update.Email); err != nil {
			errs = append(errs, err)
		}
	}
	if update.Role != nil && !update.Role.Valid() {
		errs = append(errs, ErrInvalidRole)
	}

	return errs.orNil()
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}
	return nil
}

func validatePasswords(password, confirm string) Errors {
	var errs Errors
	switch {
	case password == "":
		errs = append(errs, ErrPasswordRequired)
	case utf8.RuneCountInString(password) < MinPasswordLength:
		errs = append(errs, ErrPasswordTooShort)
	}

	switch {
	case confirm == "":
		errs = append(errs, ErrPasswordConfirmRequired)
	case confirm != password:
		errs = append(errs, ErrPasswordsDoNotMatch)
	}

	return errs
}
