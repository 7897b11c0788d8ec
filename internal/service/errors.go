// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrMissingCredentials   = errors.New("email and password are required")
	ErrIncorrectCredentials = errors.New("incorrect email or password")
	ErrAdminRoleNotAllowed  = errors.New("admin role cannot be self-assigned")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsInvalid          = errors.New("token is invalid")
	ErrUserNoLongerExists      = errors.New("token subject no longer exists")
	ErrPasswordChangedRecently = errors.New("password changed after token was issued")

	ErrNoUserWithEmail   = errors.New("no user with this email")
	ErrResetMailFailed   = errors.New("reset mail could not be sent")
	ErrResetTokenInvalid = errors.New("reset token is invalid or has expired")

	ErrCurrentPasswordWrong     = errors.New("current password is wrong")
	ErrPasswordUpdateNotAllowed = errors.New("password cannot be changed here")
	ErrPasswordHashing          = errors.New("password hashing failed")

	ErrNotReviewAuthor = errors.New("review belongs to another user")
)
