// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-tours/internal/logger"
	"github.com/MKhiriev/go-tours/internal/query"
	"github.com/MKhiriev/go-tours/internal/store"
	"github.com/MKhiriev/go-tours/internal/validators"
	"github.com/MKhiriev/go-tours/models"
)

type reviewService struct {
	reviewRepository store.ReviewRepository
	tourRepository   store.TourRepository
	validator        validators.Validator

	logger *logger.Logger
}

func NewReviewService(reviewRepository store.ReviewRepository, tourRepository store.TourRepository, validator validators.Validator, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		tourRepository:   tourRepository,
		validator:        validator,
		logger:           logger,
	}
}

func (s *reviewService) ListReviews(ctx context.Context, tourID int64, params url.Values) ([]query.Document, error) {
	return s.reviewRepository.ListReviews(ctx, tourID, params)
}

func (s *reviewService) GetReview(ctx context.Context, id int64) (query.Document, error) {
	return s.reviewRepository.GetReview(ctx, id)
}

func (s *reviewService) CreateReview(ctx context.Context, review models.Review) (query.Document, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, review); err != nil {
		log.Debug().Err(err).Int64("tour", review.TourID).Msg("review rejected by validation")
		return nil, err
	}

	created, err := s.reviewRepository.CreateReview(ctx, review)
	if err != nil {
		log.Err(err).Int64("tour", review.TourID).Int64("user", review.UserID).Msg("error creating review")
		return nil, fmt.Errorf("error creating review: %w", err)
	}

	s.recalculateRatings(ctx, review.TourID)
	return created, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, principal models.Principal, id int64, update models.ReviewUpdate) (query.Document, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Debug().Err(err).Int64("id", id).Msg("review update rejected by validation")
		return nil, err
	}

	review, err := s.authorReview(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.reviewRepository.UpdateReview(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("error updating review")
		return nil, fmt.Errorf("error updating review: %w", err)
	}

	s.recalculateRatings(ctx, review.TourID)
	return updated, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, principal models.Principal, id int64) error {
	if _, err := s.authorReview(ctx, principal, id); err != nil {
		return err
	}

	tourID, err := s.reviewRepository.DeleteReview(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("error deleting review")
		return fmt.Errorf("error deleting review: %w", err)
	}

	s.recalculateRatings(ctx, tourID)
	return nil
}

// authorReview loads review id and checks that principal may change it.
func (s *reviewService) authorReview(ctx context.Context, principal models.Principal, id int64) (models.Review, error) {
	review, err := s.reviewRepository.FindReview(ctx, id)
	if err != nil {
		return models.Review{}, fmt.Errorf("error finding review: %w", err)
	}

	if principal.Role != models.RoleAdmin && review.UserID != principal.UserID {
		logger.FromContext(ctx).Warn().
			Int64("id", id).
			Int64("user", principal.UserID).
			Msg("attempt to modify another user's review")
		return models.Review{}, ErrNotReviewAuthor
	}

	return review, nil
}

// recalculateRatings refreshes the tour's rating summary. The review write
// has already succeeded, so a failure here is only logged.
func (s *reviewService) recalculateRatings(ctx context.Context, tourID int64) {
	if err := s.tourRepository.RecalculateRatings(ctx, tourID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("tour", tourID).Msg("error recalculating tour ratings")
	}
}
