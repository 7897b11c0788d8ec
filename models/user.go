// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique, lower-cased login identifier.
	Email string `json:"email"`

	// Photo is the file name of the avatar. Defaults to "default.jpg".
	Photo string `json:"photo"`

	// Role is the authorization role of the account.
	Role Role `json:"role"`

	// PasswordHash stores the bcrypt hash of the password.
	// It is only populated by lookups that explicitly select it.
	PasswordHash string `json:"-"`

	// PasswordChangedAt is the moment the password was last changed.
	// Tokens issued before it are rejected.
	PasswordChangedAt *time.Time `json:"-"`

	// PasswordResetToken is the SHA-256 hex digest of the pending reset token.
	PasswordResetToken *string `json:"-"`

	// PasswordResetExpires is the expiry of the pending reset token.
	PasswordResetExpires *time.Time `json:"-"`

	// Active is false for accounts closed via deleteMe.
	Active bool `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// ChangedPasswordAfter reports whether the password was changed after the
// given token issue time. Both sides are compared as unix seconds.
func (u User) ChangedPasswordAfter(issuedAt time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}
	return u.PasswordChangedAt.Unix() > issuedAt.Unix()
}

// Principal returns the request-scoped identity derived from the user.
func (u User) Principal() Principal {
	return Principal{UserID: u.ID, Name: u.Name, Email: u.Email, Photo: u.Photo, Role: u.Role}
}

// UserUpdate is a partial update of a user record. Nil fields are left
// untouched.
type UserUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Photo *string `json:"photo,omitempty"`
	Role  *Role   `json:"role,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Photo == nil && u.Role == nil
}
