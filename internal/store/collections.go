// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"net/url"

	"github.com/MKhiriev/go-tours/internal/query"
)

// Tours is the public document shape of a tour.
var Tours = query.Collection{
	Table: "tours",
	Fields: []query.Field{
		{Name: "id", Column: "id", Kind: query.KindInt},
		{Name: "name", Column: "name", Kind: query.KindText},
		{Name: "slug", Column: "slug", Kind: query.KindText},
		{Name: "duration", Column: "duration", Kind: query.KindInt},
		{Name: "durationWeeks", Column: "duration / 7.0", Kind: query.KindFloat},
		{Name: "maxGroupSize", Column: "max_group_size", Kind: query.KindInt},
		{Name: "difficulty", Column: "difficulty", Kind: query.KindText},
		{Name: "ratingsAverage", Column: "ratings_average", Kind: query.KindFloat},
		{Name: "ratingsQuantity", Column: "ratings_quantity", Kind: query.KindInt},
		{Name: "price", Column: "price", Kind: query.KindFloat},
		{Name: "priceDiscount", Column: "price_discount", Kind: query.KindFloat},
		{Name: "summary", Column: "summary", Kind: query.KindText},
		{Name: "description", Column: "description", Kind: query.KindText},
		{Name: "imageCover", Column: "image_cover", Kind: query.KindText},
		{Name: "images", Column: "images", Kind: query.KindTextArray},
		{Name: "startDates", Column: "start_dates", Kind: query.KindTimeArray},
		{Name: "secretTour", Column: "secret_tour", Kind: query.KindBool},
		{Name: "startLocation", Column: "start_location", Kind: query.KindJSON},
		{Name: "locations", Column: "locations", Kind: query.KindJSON},
		{Name: "guides", Column: tourGuideIDs, Kind: query.KindIntArray},
		{Name: "createdAt", Column: "created_at", Kind: query.KindTime},
		{Name: "version", Column: "version", Kind: query.KindInt},
	},
	DefaultSort: "name",
	Hidden:      []string{"version"},
}

const tourGuideIDs = "ARRAY(SELECT tg.user_id FROM tour_guides tg WHERE tg.tour_id = tours.id ORDER BY tg.user_id)"

// Users is the public document shape of a user. Credentials and the
// active flag are never part of it.
var Users = query.Collection{
	Table: "users",
	Fields: []query.Field{
		{Name: "id", Column: "id", Kind: query.KindInt},
		{Name: "name", Column: "name", Kind: query.KindText},
		{Name: "email", Column: "email", Kind: query.KindText},
		{Name: "photo", Column: "photo", Kind: query.KindText},
		{Name: "role", Column: "role", Kind: query.KindText},
		{Name: "createdAt", Column: "created_at", Kind: query.KindTime},
		{Name: "version", Column: "version", Kind: query.KindInt},
	},
	DefaultSort: "name",
	Hidden:      []string{"version"},
}

// Reviews is the public document shape of a review.
var Reviews = query.Collection{
	Table: "reviews",
	Fields: []query.Field{
		{Name: "id", Column: "id", Kind: query.KindInt},
		{Name: "review", Column: "review", Kind: query.KindText},
		{Name: "rating", Column: "rating", Kind: query.KindInt},
		{Name: "tour", Column: "tour_id", Kind: query.KindInt},
		{Name: "user", Column: "user_id", Kind: query.KindInt},
		{Name: "createdAt", Column: "created_at", Kind: query.KindTime},
		{Name: "version", Column: "version", Kind: query.KindInt},
	},
	DefaultSort: "createdAt",
	Hidden:      []string{"version"},
}

// guideFields and reviewerFields are the user fields embedded into tours and
// reviews when they are populated.
var (
	guideFields    = url.Values{query.ParamFields: {"name,email,photo,role"}}
	reviewerFields = url.Values{query.ParamFields: {"name,photo"}}
)
