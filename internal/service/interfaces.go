// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-tours/internal/query"
	"github.com/MKhiriev/go-tours/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues and verifies identity tokens and owns every password
// flow.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// Authenticate verifies tokenString and resolves the active user it was
	// issued to.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)

	// ForgotPassword stores a reset ticket for email and mails
	// resetURLPrefix followed by the plaintext ticket.
	ForgotPassword(ctx context.Context, email, resetURLPrefix string) error
	ResetPassword(ctx context.Context, resetToken string, req models.ResetPasswordRequest) (models.User, error)
	UpdatePassword(ctx context.Context, userID int64, req models.UpdatePasswordRequest) (models.User, error)
}

type UserService interface {
	ListUsers(ctx context.Context, params url.Values) ([]query.Document, error)
	GetUser(ctx context.Context, id int64) (query.Document, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (query.Document, error)
	DeleteUser(ctx context.Context, id int64) error

	UpdateMe(ctx context.Context, id int64, req models.UpdateMeRequest) (query.Document, error)
	DeleteMe(ctx context.Context, id int64) error

	// PurgeExpiredResetTokens clears every reset ticket past its expiry and
	// returns how many were cleared.
	PurgeExpiredResetTokens(ctx context.Context) (int64, error)
}

type TourService interface {
	ListTours(ctx context.Context, params url.Values) ([]query.Document, error)
	GetTour(ctx context.Context, id int64) (query.Document, error)
	CreateTour(ctx context.Context, tour models.Tour) (query.Document, error)
	UpdateTour(ctx context.Context, id int64, update models.TourUpdate) (query.Document, error)
	DeleteTour(ctx context.Context, id int64) error

	TourStats(ctx context.Context) ([]models.TourStats, error)
	MonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlan, error)
}

// ReviewService manages reviews and keeps the rating summary of the
// reviewed tour in step with them.
type ReviewService interface {
	ListReviews(ctx context.Context, tourID int64, params url.Values) ([]query.Document, error)
	GetReview(ctx context.Context, id int64) (query.Document, error)
	CreateReview(ctx context.Context, review models.Review) (query.Document, error)

	// UpdateReview and DeleteReview are allowed to the author and to admins.
	UpdateReview(ctx context.Context, principal models.Principal, id int64, update models.ReviewUpdate) (query.Document, error)
	DeleteReview(ctx context.Context, principal models.Principal, id int64) error
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.BuildInfo
}
