// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// User rules.
var (
	ErrNameRequired            = errors.New("Please enter your name")
	ErrEmailRequired           = errors.New("Please enter your email")
	ErrInvalidEmail            = errors.New("Not a valid email")
	ErrInvalidRole             = errors.New("Role is either: user, guide, lead-guide, admin")
	ErrPasswordRequired        = errors.New("Please enter a password")
	ErrPasswordTooShort        = errors.New("Too weak")
	ErrPasswordConfirmRequired = errors.New("Please confirm your password")
	ErrPasswordsDoNotMatch     = errors.New("Passwords don't match")
)

// Tour rules.
var (
	ErrTourNameRequired      = errors.New("a tour must have a name")
	ErrTourNameTooLong       = errors.New("A name must be less than or equal 40 characters")
	ErrTourNameTooShort      = errors.New("A name must be more than or equal 10 characters")
	ErrTourDurationRequired  = errors.New("a tour must have a duration")
	ErrTourGroupSizeRequired = errors.New("a tour must have a group size")
	ErrTourDifficulty        = errors.New("Difficulties are either easy, medium, or difficult")
	ErrTourPriceRequired     = errors.New("a tour must have a price")
	ErrTourDiscountTooHigh   = errors.New("Discount price should be less than price")
	ErrTourSummaryRequired   = errors.New("a tour must have a description")
	ErrTourImageRequired     = errors.New("a tour must have an image cover")
	ErrTourInvalidLocation   = errors.New("A location must be a GeoJSON Point with [longitude, latitude] coordinates")
	ErrTourInvalidGuide      = errors.New("Guides must be user ids")
)

// Review rules.
var (
	ErrReviewRequired     = errors.New("Review can not be empty!")
	ErrRatingOutOfRange   = errors.New("A rating must be between 1 and 5")
	ErrReviewTourRequired = errors.New("Review must belong to a tour")
	ErrReviewUserRequired = errors.New("Review must belong to a user")
)

var ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

// Errors collects every rule broken by one value, in field order.
type Errors []error

// Error joins the messages the way they are shown to clients.
func (e Errors) Error() string {
	messages := make([]string, 0, len(e))
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return "Invalid input data. " + strings.Join(messages, ". ")
}

func (e Errors) Unwrap() []error {
	return e
}

// orNil returns nil for an empty collection so callers can return it
// directly.
func (e Errors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
