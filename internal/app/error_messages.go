// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings written into go-tours HTTP
// responses, kept in one place so the wording stays consistent.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "Invalid input data"

	// MsgProvideEmailAndPassword is returned by login when either credential
	// is missing.
	MsgProvideEmailAndPassword = "Please provide email and password!"

	// MsgIncorrectEmailOrPassword is returned by login for an unknown email
	// and for a wrong password alike.
	MsgIncorrectEmailOrPassword = "Incorrect email or password"

	// MsgNotLoggedIn is returned by protect when no token is presented.
	MsgNotLoggedIn = "You are not logged in! Please log in to get access."

	// MsgInvalidToken is returned when a token fails signature or claim
	// verification.
	MsgInvalidToken = "Invalid token. Please log in again!"

	// MsgTokenIsExpired is returned when a token is past its expiry.
	MsgTokenIsExpired = "Your token has expired! Please log in again."

	// MsgUserNoLongerExists is returned when the token subject was deleted
	// or deactivated.
	MsgUserNoLongerExists = "The user belonging to this token no longer exists."

	// MsgPasswordChangedRecently is returned when the password was changed
	// after the token was issued.
	MsgPasswordChangedRecently = "User recently changed password! Please log in again."

	// MsgPermissionDenied is returned by authorize when the role does not
	// qualify.
	MsgPermissionDenied = "You do not have permission to perform this action"

	// MsgNoUserWithEmail is returned by forgot-password for an unknown email.
	MsgNoUserWithEmail = "There is no user with this email address."

	// MsgResetTokenSent confirms a forgot-password request.
	MsgResetTokenSent = "Token sent to email!"

	// MsgResetMailFailed is returned when the reset mail could not be sent.
	MsgResetMailFailed = "There was an error sending the email. Try again later!"

	// MsgResetTokenInvalid is returned when a reset ticket is unknown or
	// expired.
	MsgResetTokenInvalid = "Token is invalid or has expired"

	// MsgCurrentPasswordWrong is returned by update-password on mismatch.
	MsgCurrentPasswordWrong = "Your current password is wrong."

	// MsgPasswordUpdateNotAllowed is returned by updateMe when the body
	// carries password fields.
	MsgPasswordUpdateNotAllowed = "This route is not for password updates. Please use /updatepass."

	// MsgAdminRoleNotAllowed is returned by signup when the admin role is
	// requested.
	MsgAdminRoleNotAllowed = "The admin role cannot be self-assigned"

	// MsgDuplicateValue is returned on a unique constraint violation.
	MsgDuplicateValue = "Duplicate field value. Please use another value!"

	// MsgInvalidValue is returned when a value cannot be cast to the column
	// type.
	MsgInvalidValue = "Invalid value provided for a field"

	// MsgNoDocumentFound is returned when an id does not resolve.
	MsgNoDocumentFound = "No document found with that ID"

	// MsgNoUpdateFields is returned when a PATCH body carries nothing to
	// change.
	MsgNoUpdateFields = "No fields to update"

	// MsgAlreadyReviewed is returned when a user reviews the same tour twice.
	MsgAlreadyReviewed = "You have already reviewed this tour"

	// MsgNotReviewAuthor is returned when a user edits somebody else's
	// review.
	MsgNotReviewAuthor = "You can only modify your own reviews"

	// MsgUnknownReference is returned when a tour or review points at a
	// user or tour that does not exist.
	MsgUnknownReference = "Referenced document does not exist"

	// MsgRequestTooLarge is returned when the body exceeds the size limit.
	MsgRequestTooLarge = "Request body is too large"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "Too many requests from this IP, please try again in an hour!"

	// MsgInternalServerError is returned for programming errors in
	// production.
	MsgInternalServerError = "Something went very wrong!"

	// MsgRouteNotFound is the format of the catch-all 404 message.
	MsgRouteNotFound = "Can't find %s on this server!"
)
