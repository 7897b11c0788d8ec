// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-tours/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func validSignup() models.SignupRequest {
	return models.SignupRequest{
		Name:            "Jonas Schmedtmann",
		Email:           "jonas@example.com",
		Password:        "pass1234",
		PasswordConfirm: "pass1234",
	}
}

// ---------------------------------------------------------------------------
// TestUserValidator_Signup
// ---------------------------------------------------------------------------

func TestUserValidator_Signup(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		modify func(r *models.SignupRequest)
		want   []error
	}{
		{name: "valid", modify: func(r *models.SignupRequest) {}},
		{name: "valid with role", modify: func(r *models.SignupRequest) { r.Role = models.RoleGuide }},
		{name: "missing name", modify: func(r *models.SignupRequest) { r.Name = "  " }, want: []error{ErrNameRequired}},
		{name: "missing email", modify: func(r *models.SignupRequest) { r.Email = "" }, want: []error{ErrEmailRequired}},
		{name: "malformed email", modify: func(r *models.SignupRequest) { r.Email = "jonas.example.com" }, want: []error{ErrInvalidEmail}},
		{name: "email with display name", modify: func(r *models.SignupRequest) { r.Email = "Jonas <jonas@example.com>" }, want: []error{ErrInvalidEmail}},
		{name: "unknown role", modify: func(r *models.SignupRequest) { r.Role = "root" }, want: []error{ErrInvalidRole}},
		{name: "short password", modify: func(r *models.SignupRequest) { r.Password, r.PasswordConfirm = "pass", "pass" }, want: []error{ErrPasswordTooShort}},
		{name: "missing confirmation", modify: func(r *models.SignupRequest) { r.PasswordConfirm = "" }, want: []error{ErrPasswordConfirmRequired}},
		{name: "mismatch", modify: func(r *models.SignupRequest) { r.PasswordConfirm = "pass12345" }, want: []error{ErrPasswordsDoNotMatch}},
		{
			name:   "every broken rule is reported",
			modify: func(r *models.SignupRequest) { *r = models.SignupRequest{} },
			want:   []error{ErrNameRequired, ErrEmailRequired, ErrPasswordRequired, ErrPasswordConfirmRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			tt.modify(&req)

			err := v.Validate(ctx, req)
			if len(tt.want) == 0 {
				require.NoError(t, err)
				return
			}

			var errs Errors
			require.True(t, errors.As(err, &errs))
			assert.Equal(t, Errors(tt.want), errs)
			for _, want := range tt.want {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestUserValidator_SignupFieldScoping(t *testing.T) {
	v := NewUserValidator()

	req := models.SignupRequest{Name: "Jonas"}
	assert.NoError(t, v.Validate(context.Background(), &req, FieldName))
	assert.ErrorIs(t, v.Validate(context.Background(), &req, "age"), ErrUnknownField)
}

func TestUserValidator_Passwords(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ResetPasswordRequest{Password: "newpass123", PasswordConfirm: "newpass123"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.ResetPasswordRequest{Password: "newpass123", PasswordConfirm: "other"}), ErrPasswordsDoNotMatch)

	err := v.Validate(ctx, models.UpdatePasswordRequest{PasswordCurrent: "old", Password: "short", PasswordConfirm: "short"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	// eight characters, not eight bytes
	assert.NoError(t, v.Validate(ctx, models.ResetPasswordRequest{Password: "пароль12", PasswordConfirm: "пароль12"}))
}

func TestUserValidator_UserUpdate(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.UserUpdate{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.UserUpdate{Name: ptr("Lea")}))
	assert.ErrorIs(t, v.Validate(ctx, &models.UserUpdate{Email: ptr("nope")}), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.UserUpdate{Role: ptr(models.Role("owner"))}), ErrInvalidRole)
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewUserValidator().Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestErrors_Error(t *testing.T) {
	err := Errors{ErrTourNameTooShort, ErrTourDifficulty}
	assert.Equal(t, "Invalid input data. A name must be more than or equal 10 characters. Difficulties are either easy, medium, or difficult", err.Error())
	assert.Nil(t, Errors(nil).orNil())
}
