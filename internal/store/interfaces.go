// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"net/url"
	"time"

	"github.com/MKhiriev/go-tours/internal/query"
	"github.com/MKhiriev/go-tours/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores accounts. Lookups only see active users.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByResetToken(ctx context.Context, hashedToken string, now time.Time) (models.User, error)

	ListUsers(ctx context.Context, params url.Values) ([]query.Document, error)
	GetUser(ctx context.Context, id int64) (query.Document, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (query.Document, error)
	DeleteUser(ctx context.Context, id int64) error

	UpdatePassword(ctx context.Context, id int64, passwordHash string, changedAt time.Time) error
	SetResetToken(ctx context.Context, id int64, hashedToken string, expires time.Time) error
	ClearResetToken(ctx context.Context, id int64) error
	PurgeExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
	Deactivate(ctx context.Context, id int64) error
}

// TourRepository stores tours. Secret tours are invisible to every read
// except the one following a write.
type TourRepository interface {
	ListTours(ctx context.Context, params url.Values) ([]query.Document, error)
	GetTour(ctx context.Context, id int64) (query.Document, error)
	CreateTour(ctx context.Context, tour models.Tour) (query.Document, error)
	UpdateTour(ctx context.Context, id int64, update models.TourUpdate) (query.Document, error)
	DeleteTour(ctx context.Context, id int64) error

	TourStats(ctx context.Context) ([]models.TourStats, error)
	MonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlan, error)
	RecalculateRatings(ctx context.Context, tourID int64) error
}

// ReviewRepository stores reviews.
type ReviewRepository interface {
	// ListReviews lists the reviews of tourID, or of every tour when
	// tourID is 0.
	ListReviews(ctx context.Context, tourID int64, params url.Values) ([]query.Document, error)
	GetReview(ctx context.Context, id int64) (query.Document, error)
	FindReview(ctx context.Context, id int64) (models.Review, error)
	CreateReview(ctx context.Context, review models.Review) (query.Document, error)
	UpdateReview(ctx context.Context, id int64, update models.ReviewUpdate) (query.Document, error)

	// DeleteReview removes the review and returns the tour it belonged to.
	DeleteReview(ctx context.Context, id int64) (int64, error)
}
