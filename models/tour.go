// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Difficulty grades a tour.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyDifficult Difficulty = "difficult"
)

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyDifficult:
		return true
	}
	return false
}

// Location is a GeoJSON point with a human-readable description.
type Location struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
	Address     string    `json:"address,omitempty"`
	Description string    `json:"description,omitempty"`
	Day         int       `json:"day,omitempty"`
}

// Tour is the write model of a tour. Reads go through the tours document
// collection, so only the fields a client may set are present here.
type Tour struct {
	Name          string      `json:"name"`
	Duration      int         `json:"duration"`
	MaxGroupSize  int         `json:"maxGroupSize"`
	Difficulty    Difficulty  `json:"difficulty"`
	Price         float64     `json:"price"`
	PriceDiscount *float64    `json:"priceDiscount,omitempty"`
	Summary       string      `json:"summary"`
	Description   string      `json:"description,omitempty"`
	ImageCover    string      `json:"imageCover"`
	Images        []string    `json:"images,omitempty"`
	StartDates    []time.Time `json:"startDates,omitempty"`
	SecretTour    bool        `json:"secretTour,omitempty"`
	StartLocation *Location   `json:"startLocation,omitempty"`
	Locations     []Location  `json:"locations,omitempty"`
	Guides        []int64     `json:"guides,omitempty"`
}

// TourUpdate is a partial update of a tour. Nil fields are left untouched.
type TourUpdate struct {
	Name          *string      `json:"name,omitempty"`
	Duration      *int         `json:"duration,omitempty"`
	MaxGroupSize  *int         `json:"maxGroupSize,omitempty"`
	Difficulty    *Difficulty  `json:"difficulty,omitempty"`
	Price         *float64     `json:"price,omitempty"`
	PriceDiscount *float64     `json:"priceDiscount,omitempty"`
	Summary       *string      `json:"summary,omitempty"`
	Description   *string      `json:"description,omitempty"`
	ImageCover    *string      `json:"imageCover,omitempty"`
	Images        *[]string    `json:"images,omitempty"`
	StartDates    *[]time.Time `json:"startDates,omitempty"`
	SecretTour    *bool        `json:"secretTour,omitempty"`
	StartLocation *Location    `json:"startLocation,omitempty"`
	Locations     *[]Location  `json:"locations,omitempty"`
	Guides        *[]int64     `json:"guides,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u TourUpdate) IsEmpty() bool {
	return u == TourUpdate{}
}

// TourStats is one row of the tour statistics report, grouped by difficulty.
type TourStats struct {
	Difficulty string  `json:"difficulty"`
	NumTours   int64   `json:"numTours"`
	NumRatings int64   `json:"numRatings"`
	AvgRating  float64 `json:"avgRating"`
	AvgPrice   float64 `json:"avgPrice"`
	MinPrice   float64 `json:"minPrice"`
	MaxPrice   float64 `json:"maxPrice"`
}

// MonthlyPlan is the number of tour starts in one month of a year.
type MonthlyPlan struct {
	Month         int      `json:"month"`
	NumTourStarts int64    `json:"numTourStarts"`
	Tours         []string `json:"tours"`
}
