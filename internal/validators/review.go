// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-tours/models"
)

// Rating bounds shared by reviews and tour averages.
const (
	MinRating = 1
	MaxRating = 5
)

// ReviewValidator validates reviews on create and update.
type ReviewValidator struct{}

func NewReviewValidator() Validator {
	return &ReviewValidator{}
}

func (v *ReviewValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Review:
		return v.validateReview(value)
	case *models.Review:
		return v.validateReview(*value)

	case models.ReviewUpdate:
		return v.validateReviewUpdate(value)
	case *models.ReviewUpdate:
		return v.validateReviewUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *ReviewValidator) validateReview(review models.Review) error {
	var errs Errors

	if strings.TrimSpace(review.Review) == "" {
		errs = append(errs, ErrReviewRequired)
	}
	if review.Rating < MinRating || review.Rating > MaxRating {
		errs = append(errs, ErrRatingOutOfRange)
	}
	if review.TourID <= 0 {
		errs = append(errs, ErrReviewTourRequired)
	}
	if review.UserID <= 0 {
		errs = append(errs, ErrReviewUserRequired)
	}

	return errs.orNil()
}

func (v *ReviewValidator) validateReviewUpdate(update models.ReviewUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	var errs Errors
	if update.Review != nil && strings.TrimSpace(*update.Review) == "" {
		errs = append(errs, ErrReviewRequired)
	}
	if update.Rating != nil && (*update.Rating < MinRating || *update.Rating > MaxRating) {
		errs = append(errs, ErrRatingOutOfRange)
	}

	return errs.orNil()
}
