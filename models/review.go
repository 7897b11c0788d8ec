// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Review is a rating left by a user for a tour. A user may review a tour
// only once.
type Review struct {
	ID        int64     `json:"id"`
	Review    string    `json:"review"`
	Rating    int       `json:"rating"`
	TourID    int64     `json:"tour"`
	UserID    int64     `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewUpdate is a partial update of a review.
type ReviewUpdate struct {
	Review *string `json:"review,omitempty"`
	Rating *int    `json:"rating,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u ReviewUpdate) IsEmpty() bool {
	return u.Review == nil && u.Rating == nil
}
