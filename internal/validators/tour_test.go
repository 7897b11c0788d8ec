// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-tours/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTour() models.Tour {
	return models.Tour{
		Name:         "The Forest Hiker",
		Duration:     5,
		MaxGroupSize: 25,
		Difficulty:   models.DifficultyEasy,
		Price:        397,
		Summary:      "Breathtaking hike through the Canadian Banff National Park",
		ImageCover:   "tour-1-cover.jpg",
		StartLocation: &models.Location{
			Type:        "Point",
			Coordinates: []float64{-115.570154, 51.178456},
		},
		Guides: []int64{2, 3},
	}
}

func TestTourValidator_Tour(t *testing.T) {
	v := NewTourValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		modify func(t *models.Tour)
		want   error
	}{
		{name: "valid", modify: func(t *models.Tour) {}},
		{name: "name too short", modify: func(t *models.Tour) { t.Name = "Hiker" }, want: ErrTourNameTooShort},
		{name: "name too long", modify: func(t *models.Tour) { t.Name = "The Forest Hiker Who Walks All The Way Home" }, want: ErrTourNameTooLong},
		{name: "missing name", modify: func(t *models.Tour) { t.Name = "" }, want: ErrTourNameRequired},
		{name: "missing duration", modify: func(t *models.Tour) { t.Duration = 0 }, want: ErrTourDurationRequired},
		{name: "missing group size", modify: func(t *models.Tour) { t.MaxGroupSize = 0 }, want: ErrTourGroupSizeRequired},
		{name: "unknown difficulty", modify: func(t *models.Tour) { t.Difficulty = "extreme" }, want: ErrTourDifficulty},
		{name: "missing price", modify: func(t *models.Tour) { t.Price = 0 }, want: ErrTourPriceRequired},
		{name: "discount equals price", modify: func(t *models.Tour) { t.PriceDiscount = ptr(397.0) }, want: ErrTourDiscountTooHigh},
		{name: "missing summary", modify: func(t *models.Tour) { t.Summary = " " }, want: ErrTourSummaryRequired},
		{name: "missing cover", modify: func(t *models.Tour) { t.ImageCover = "" }, want: ErrTourImageRequired},
		{name: "bad coordinates", modify: func(t *models.Tour) { t.StartLocation.Coordinates = []float64{1} }, want: ErrTourInvalidLocation},
		{name: "bad stop", modify: func(t *models.Tour) { t.Locations = []models.Location{{Type: "Polygon"}} }, want: ErrTourInvalidLocation},
		{name: "bad guide", modify: func(t *models.Tour) { t.Guides = []int64{0} }, want: ErrTourInvalidGuide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tour := validTour()
			tt.modify(&tour)

			err := v.Validate(ctx, tour)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTourValidator_CollectsAllRules(t *testing.T) {
	err := NewTourValidator().Validate(context.Background(), &models.Tour{})

	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, Errors{
		ErrTourNameRequired,
		ErrTourDurationRequired,
		ErrTourGroupSizeRequired,
		ErrTourDifficulty,
		ErrTourPriceRequired,
		ErrTourSummaryRequired,
		ErrTourImageRequired,
	}, errs)
}

func TestTourValidator_Update(t *testing.T) {
	v := NewTourValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.TourUpdate{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.TourUpdate{Price: ptr(500.0)}))
	assert.NoError(t, v.Validate(ctx, models.TourUpdate{PriceDiscount: ptr(900.0)}), "a lone discount is left to the database")
	assert.ErrorIs(t, v.Validate(ctx, &models.TourUpdate{Price: ptr(500.0), PriceDiscount: ptr(600.0)}), ErrTourDiscountTooHigh)
	assert.ErrorIs(t, v.Validate(ctx, models.TourUpdate{Name: ptr("Short")}), ErrTourNameTooShort)

	difficulty := models.Difficulty("hard")
	assert.ErrorIs(t, v.Validate(ctx, models.TourUpdate{Difficulty: &difficulty}), ErrTourDifficulty)
	assert.ErrorIs(t, v.Validate(ctx, models.TourUpdate{Guides: &[]int64{-1}}), ErrTourInvalidGuide)
}

func TestTourValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewTourValidator().Validate(context.Background(), models.Review{}), ErrUnsupportedType)
}
