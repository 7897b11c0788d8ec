// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-tours/models"
)

// Tour name length bounds, in characters.
const (
	MinTourNameLength = 10
	MaxTourNameLength = 40
)

// TourValidator validates tours on create and update. Updates only check the
// fields they carry.
type TourValidator struct{}

func NewTourValidator() Validator {
	return &TourValidator{}
}

func (v *TourValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Tour:
		return v.validateTour(value)
	case *models.Tour:
		return v.validateTour(*value)

	case models.TourUpdate:
		return v.validateTourUpdate(value)
	case *models.TourUpdate:
		return v.validateTourUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *TourValidator) validateTour(tour models.Tour) error {
	var errs Errors

	if err := validateTourName(tour.Name); err != nil {
		errs = append(errs, err)
	}
	if tour.Duration <= 0 {
		errs = append(errs, ErrTourDurationRequired)
	}
	if tour.MaxGroupSize <= 0 {
		errs = append(errs, ErrTourGroupSizeRequired)
	}
	if !tour.Difficulty.Valid() {
		errs = append(errs, ErrTourDifficulty)
	}
	if tour.Price <= 0 {
		errs = append(errs, ErrTourPriceRequired)
	}
	if tour.PriceDiscount != nil && *tour.PriceDiscount >= tour.Price {
		errs = append(errs, ErrTourDiscountTooHigh)
	}
	if strings.TrimSpace(tour.Summary) == "" {
		errs = append(errs, ErrTourSummaryRequired)
	}
	if strings.TrimSpace(tour.ImageCover) == "" {
		errs = append(errs, ErrTourImageRequired)
	}
	errs = append(errs, validateLocations(tour.StartLocation, tour.Locations)...)
	if err := validateGuides(tour.Guides); err != nil {
		errs = append(errs, err)
	}

	return errs.orNil()
}

func (v *TourValidator) validateTourUpdate(update models.TourUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	var errs Errors

	if update.Name != nil {
		if err := validateTourName(*update.Name); err != nil {
			errs = append(errs, err)
		}
	}
	if update.Duration != nil && *update.Duration <= 0 {
		errs = append(errs, ErrTourDurationRequired)
	}
	if update.MaxGroupSize != nil && *update.MaxGroupSize <= 0 {
		errs = append(errs, ErrTourGroupSizeRequired)
	}
	if update.Difficulty != nil && !update.Difficulty.Valid() {
		errs = append(errs, ErrTourDifficulty)
	}
	if update.Price != nil && *update.Price <= 0 {
		errs = append(errs, ErrTourPriceRequired)
	}
	// a lone discount is checked against the stored price by the database
	if update.Price != nil && update.PriceDiscount != nil && *update.PriceDiscount >= *update.Price {
		errs = append(errs, ErrTourDiscountTooHigh)
	}
	if update.Summary != nil && strings.TrimSpace(*update.Summary) == "" {
		errs = append(errs, ErrTourSummaryRequired)
	}
	if update.ImageCover != nil && strings.TrimSpace(*update.ImageCover) == "" {
		errs = append(errs, ErrTourImageRequired)
	}
	var locations []models.Location
	if update.Locations != nil {
		locations = *update.Locations
	}
	errs = append(errs, validateLocations(update.StartLocation, locations)...)
	if update.Guides != nil {
		if err := validateGuides(*update.Guides); err != nil {
			errs = append(errs, err)
		}
	}

	return errs.orNil()
}

func validateTourName(name string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	switch {
	case n == 0:
		return ErrTourNameRequired
	case n > MaxTourNameLength:
		return ErrTourNameTooLong
	case n < MinTourNameLength:
		return ErrTourNameTooShort
	}
	return nil
}

func validateLocations(start *models.Location, stops []models.Location) Errors {
	if start != nil && !validPoint(*start) {
		return Errors{ErrTourInvalidLocation}
	}
	for _, stop := range stops {
		if !validPoint(stop) {
			return Errors{ErrTourInvalidLocation}
		}
	}
	return nil
}

func validPoint(l models.Location) bool {
	if l.Type != "" && l.Type != "Point" {
		return false
	}
	if len(l.Coordinates) != 2 {
		return false
	}
	lng, lat := l.Coordinates[0], l.Coordinates[1]
	return lng >= -180 && lng <= 180 && lat >= -90 && lat <= 90
}

func validateGuides(guides []int64) error {
	for _, id := range guides {
		if id <= 0 {
			return ErrTourInvalidGuide
		}
	}
	return nil
}
