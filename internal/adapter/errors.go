// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrMailRejected is returned when the relay permanently refused the
	// message or the connection could not be established.
	ErrMailRejected = errors.New("mail was rejected")

	// ErrMailTemporary is returned for transient relay failures; sending
	// again later may succeed.
	ErrMailTemporary = errors.New("mail delivery temporarily failed")

	// ErrInvalidMail is returned when the message cannot be composed, for
	// example because of a malformed address.
	ErrInvalidMail = errors.New("invalid mail")
)
