// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignupRequest is the body of POST /api/v1/users/signup.
// Only these fields are copied into the new account; anything else in the
// payload is ignored.
type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
	Photo           string `json:"photo,omitempty"`
	Role            Role   `json:"role,omitempty"`
}

// LoginRequest is the body of POST /api/v1/users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the body of POST /api/v1/users/forgotpass.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of PATCH /api/v1/users/resetpass/{token}.
type ResetPasswordRequest struct {
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

// UpdatePasswordRequest is the body of PATCH /api/v1/users/updatepass.
type UpdatePasswordRequest struct {
	// PasswordCurrent must match the stored password.
	PasswordCurrent string `json:"passwordCurrent"`

	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

// UpdateMeRequest is the body of PATCH /api/v1/users/updateMe.
// Password fields are captured only so they can be rejected.
type UpdateMeRequest struct {
	Name            *string `json:"name,omitempty"`
	Email           *string `json:"email,omitempty"`
	Photo           *string `json:"photo,omitempty"`
	Password        *string `json:"password,omitempty"`
	PasswordConfirm *string `json:"passwordConfirm,omitempty"`
}

// ToUserUpdate converts the request into a user update, dropping the
// password fields.
func (r UpdateMeRequest) ToUserUpdate() UserUpdate {
	return UserUpdate{Name: r.Name, Email: r.Email, Photo: r.Photo}
}

// HasPassword reports whether the request tries to change the password.
func (r UpdateMeRequest) HasPassword() bool {
	return r.Password != nil || r.PasswordConfirm != nil
}
